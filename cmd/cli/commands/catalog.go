package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the statistics categories in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions [seed]",
	Short: "Show example questions, optionally filtered by seed",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSuggestions,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(suggestionsCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, closeFn, err := newAssistant(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	resp, err := svc.GetCategories(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, resp)
	}
	for i, c := range resp.Categories {
		fmt.Fprintf(out, "%d. %s\n", i+1, c)
	}
	return nil
}

func runSuggestions(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, closeFn, err := newAssistant(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	seed := ""
	if len(args) == 1 {
		seed = args[0]
	}

	resp, err := svc.GetSuggestions(ctx, seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, resp)
	}
	for _, s := range resp.Suggestions {
		fmt.Fprintln(out, s)
	}
	return nil
}
