package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-notes-sensors/internal/adapter/cli"
	"github.com/marcos-nsantos/field-notes-sensors/internal/adapter/sink"
	"github.com/marcos-nsantos/field-notes-sensors/internal/infrastructure/config"
	"github.com/marcos-nsantos/field-notes-sensors/internal/infrastructure/observability"
	"github.com/marcos-nsantos/field-notes-sensors/internal/pkg/apperror"
	"github.com/marcos-nsantos/field-notes-sensors/internal/usecase/accuracy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		os.Exit(apperror.ExitCode(apperror.Config(err)))
	}

	logger, err := observability.NewLoggerFromConfig(cfg.Log)
	if err != nil {
		log.Printf("failed to create logger: %v", err)
		os.Exit(apperror.ExitCode(apperror.Config(err)))
	}

	os.Exit(run(cfg, logger))
}

func run(cfg *config.Config, logger *zap.Logger) int {
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := accuracy.NewService(sink.NewJSONLines(os.Stdout))

	runner := cli.NewRunner(cli.RunnerConfig{
		Converter:     svc,
		Logger:        logger,
		DefaultStatus: cfg.Reading.DefaultStatus,
		Strict:        cfg.Reading.Strict,
	})

	summary, err := runner.Run(ctx, os.Stdin)
	fields := []zap.Field{
		zap.Int("lines", summary.Lines),
		zap.Int("converted", summary.Converted),
		zap.Int("unknown_accuracy", summary.Unknown),
		zap.Int("skipped", summary.Skipped),
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted", fields...)
			return apperror.ExitOK
		}
		appErr := apperror.Wrap(err, "converting fixes")
		logger.Error("conversion failed", append(fields, zap.String("code", appErr.Code), zap.Error(appErr))...)
		return apperror.ExitCode(appErr)
	}

	logger.Info("conversion finished", fields...)
	return apperror.ExitOK
}
