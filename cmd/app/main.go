package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"orders/cmd"
	"orders/internal/adapters/out/logging"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "orders",
		Usage: "order management HTTP service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file loaded before reading the environment; a missing file is ignored",
			},
			&cli.StringFlag{
				Name:  "http-port",
				Usage: "overrides HTTP_PORT",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config, err := getConfigs(c.String("env-file"))
	if err != nil {
		return err
	}
	if c.IsSet("http-port") {
		config.HTTPPort = c.String("http-port")
	}
	if err = config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Enabled: config.LogEnabled,
		Level:   config.LogLevel,
		Format:  config.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, logger, nil)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to close order store", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, config, logger)
}

func getConfigs(envFile string) (cmd.Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cmd.Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		return cmd.Config{}, fmt.Errorf("read environment: %w", err)
	}
	return config, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, logger logging.LogrusLogger) error {
	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.OFF)
	e.Server.ReadTimeout = config.HTTPReadTimeout
	e.Server.WriteTimeout = config.HTTPWriteTimeout

	addr := net.JoinHostPort("0.0.0.0", config.HTTPPort)
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", addr, "version", app.Version(), "environment", config.Environment)
		serveErr <- e.Start(addr)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
