package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/consultquest/internal/app"
	"github.com/abhisek/consultquest/internal/bank"
	"github.com/abhisek/consultquest/internal/certificate"
	"github.com/abhisek/consultquest/internal/config"
	"github.com/abhisek/consultquest/internal/logging"
	"github.com/abhisek/consultquest/internal/quiz"
)

// runApp resolves configuration, builds dependencies, and launches the TUI.
// startModule is 1-based; zero opens the welcome screen.
func runApp(cmd *cobra.Command, startModule int) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog := newLogger(cfg)
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintln(os.Stderr, "close log:", err)
		}
	}()

	b, err := loadBank(cfg)
	if err != nil {
		logger.Error("load bank failed", zap.String("path", cfg.BankPath), zap.Error(err))
		return err
	}

	exporter, err := certificate.NewFileExporter(cfg.CertDir, cfg.CertFormat)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Bank:        b,
		Shuffler:    newShuffler(cfg, logger),
		Exporter:    exporter,
		Logger:      logger,
		Recipient:   cfg.Recipient,
		StartModule: startModule,
	})
}

// loadBank returns the configured bank file, or the embedded default.
func loadBank(cfg config.Config) (*bank.Bank, error) {
	if cfg.BankPath == "" {
		return bank.Default()
	}
	return bank.Load(cfg.BankPath)
}

func newLogger(cfg config.Config) (*zap.Logger, func() error) {
	if !cfg.LoggingEnabled() {
		return logging.NewNop()
	}
	return logging.New(logging.DefaultOptions(cfg.LogFile, cfg.Debug))
}

func newShuffler(cfg config.Config, logger *zap.Logger) quiz.Shuffler {
	if cfg.Seed == nil {
		return quiz.NewRandShuffler()
	}
	logger.Debug("seeded shuffle", zap.Uint64("seed", *cfg.Seed))
	return quiz.NewSeededShuffler(*cfg.Seed)
}
