package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/bitbucket"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/gitlab"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/server"
	"github.com/Tomas-vilte/MateReview/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando el servicio: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	cfgApp, err := cfg.FromEnv()
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, err
	}

	return &cli.Command{
		Name:        "mate-review",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Usage:   translations.GetMessage("flag_host_usage", 0, nil),
				Value:   cfgApp.Host,
				Sources: cli.EnvVars("HOST"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   translations.GetMessage("flag_port_usage", 0, nil),
				Value:   int64(cfgApp.Port),
				Sources: cli.EnvVars("PORT"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   translations.GetMessage("flag_debug_usage", 0, nil),
				Value:   cfgApp.Debug,
				Sources: cli.EnvVars("DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfgApp.Host = cmd.String("host")
			cfgApp.Port = int(cmd.Int("port"))
			cfgApp.Debug = cmd.Bool("debug")

			if err := cfgApp.Validate(); err != nil {
				return err
			}

			return runServer(ctx, cfgApp, translations)
		},
	}, nil
}

func runServer(ctx context.Context, cfgApp *cfg.Config, translations *i18n.Translations) error {
	logger.Initialize(cfgApp.Debug, cfgApp.Debug)

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterVCSProvider(models.ProviderGitHub, github.NewGitHubProviderFactory()); err != nil {
		logger.Warn(ctx, translations.GetMessage("warn_provider_register", 0, map[string]interface{}{
			"Provider": "GitHub", "Error": err.Error(),
		}))
	}

	if err := container.RegisterVCSProvider(models.ProviderGitLab, gitlab.NewGitLabProviderFactory()); err != nil {
		logger.Warn(ctx, translations.GetMessage("warn_provider_register", 0, map[string]interface{}{
			"Provider": "GitLab", "Error": err.Error(),
		}))
	}

	if err := container.RegisterVCSProvider(models.ProviderBitbucket, bitbucket.NewBitbucketProviderFactory()); err != nil {
		logger.Warn(ctx, translations.GetMessage("warn_provider_register", 0, map[string]interface{}{
			"Provider": "Bitbucket", "Error": err.Error(),
		}))
	}

	if cfgApp.AIEnabled() {
		generator, err := gemini.NewReviewGenerator(ctx, cfgApp.GeminiAPIKey)
		if err != nil {
			return err
		}
		defer func() {
			_ = generator.Close()
		}()
		container.SetReviewGenerator(generator)
	} else {
		logger.Warn(ctx, translations.GetMessage("warn_ai_disabled", 0, nil))
		container.SetReviewGenerator(gemini.NewDisabledReviewGenerator())
	}

	srv := server.New(container.GetReviewService(), translations)

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, translations.GetMessage("server_starting", 0, nil), "addr", cfgApp.Addr())
		errCh <- srv.Start(cfgApp.Addr())
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-sigCh:
		logger.Info(ctx, translations.GetMessage("shutdown_signal", 0, nil))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	logger.Info(ctx, translations.GetMessage("server_stopped", 0, nil))
	return nil
}
