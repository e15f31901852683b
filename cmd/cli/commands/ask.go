package commands

import (
	"StatMedan/internal/api/assistant"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Show how the assistant reads a message",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, closeFn, err := newAssistant(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := svc.Chat(ctx, assistant.ChatRequest{Message: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, resp)
	}

	fmt.Fprintln(out, resp.Content)
	if len(resp.Sources) > 0 {
		fmt.Fprintln(out, "\nSumber:")
		for _, s := range resp.Sources {
			fmt.Fprintf(out, "- %s (%s)\n", s.Title, s.URL)
		}
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, closeFn, err := newAssistant(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := svc.TestNLPProcessing(ctx, assistant.NLPTestRequest{Text: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, result)
	}

	fmt.Fprintf(out, "intent:          %s\n", result.Intent)
	fmt.Fprintf(out, "greeting prefix: %q\n", result.GreetingPrefix)
	fmt.Fprintf(out, "cleaned query:   %q\n", result.CleanedQuery)
	fmt.Fprintf(out, "keyword matches: %d\n", len(result.KeywordMatches))
	fmt.Fprintf(out, "search matches:  %d\n", len(result.SearchMatches))
	fmt.Fprintf(out, "processing time: %s\n", result.ProcessingTime)
	return nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
