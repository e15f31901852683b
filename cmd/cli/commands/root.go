package commands

import (
	"StatMedan/database/postgres"
	assistantService "StatMedan/internal/api/assistant/service"
	catalogRepository "StatMedan/internal/api/catalog/repository"
	catalogService "StatMedan/internal/api/catalog/service"
	"StatMedan/pkg/bps"
	"StatMedan/pkg/nlp"
	"StatMedan/pkg/utils"
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	catalogSource string
	verbose       bool
	asJSON        bool
)

var rootCmd = &cobra.Command{
	Use:   "statmedan",
	Short: "StatMedan AI - ask the BPS Kota Medan data assistant from the terminal",
	Long: `statmedan runs the same intent detection, dataset lookup and reply
composition as the HTTP API, against the built-in catalog or the Postgres one.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogSource, "source", "s", "static", "catalog source: static or postgres")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func loadCatalog(ctx context.Context, logger *logrus.Logger) (bps.ICatalog, func(), error) {
	switch catalogSource {
	case "static", "":
		catalog, err := bps.Load(ctx, bps.NewStaticSource())
		return catalog, func() {}, err
	case "postgres":
		db, err := postgres.New()
		if err != nil {
			return nil, nil, err
		}
		source := catalogService.New(logger, catalogRepository.New(db, logger))
		catalog, err := bps.Load(ctx, source)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return catalog, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", catalogSource)
	}
}

func newAssistant(ctx context.Context, cmd *cobra.Command) (assistantService.IAssistantService, func(), error) {
	logger := newLogger(cmd.ErrOrStderr())

	catalog, closeFn, err := loadCatalog(ctx, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	processor := nlp.NewProcessor(catalog, logger)
	svc := assistantService.NewAssistantService(logger, processor, catalog, utils.New(), nil)
	return svc, closeFn, nil
}
