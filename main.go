package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"digital-weather/config"
	"digital-weather/config/setup"
	"digital-weather/geo"
)

const usage = `usage: digital-weather [command]

commands:
  serve              run the HTTP API (default)
  seed [-n N] [-seed S]
                     insert N clustered devices inside the heatmap bounds
  users              list registered users
`

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	cmd, args := "serve", os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = serve(logger)
	case "seed":
		err = seed(args, logger)
	case "users":
		err = listUsers(logger)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func serve(logger *slog.Logger) error {
	cfg := config.AppConfig

	store, err := setup.InitDatabase(cfg.DBPath, logger)
	if err != nil {
		return err
	}

	application := setup.InitApp(store, cfg, logger)

	app := setup.NewFiberApp(cfg.Env, logger)
	setup.ApplyMiddleware(app, cfg.CORSOrigins, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-serverErr:
		logger.Error("server failed", "error", err)
	case <-quit:
		logger.Info("shutting down server gracefully")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}

	setup.Shutdown(store, logger)
	logger.Info("server stopped")
	return err
}

func seed(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	n := fs.Int("n", 100, "number of devices to generate")
	seedValue := fs.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.AppConfig

	store, err := setup.InitDatabase(cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer setup.Shutdown(store, logger)

	application := setup.InitApp(store, cfg, logger)

	rng := rand.New(rand.NewPCG(*seedValue, *seedValue>>1|1))
	ids, err := application.Devices.Seed(rng, geo.CampusClusters, *n)
	if err != nil {
		return err
	}

	fmt.Printf("inserted %d devices (seed %d)\n", len(ids), *seedValue)
	return nil
}

func listUsers(logger *slog.Logger) error {
	store, err := setup.InitDatabase(config.AppConfig.DBPath, logger)
	if err != nil {
		return err
	}
	defer setup.Shutdown(store, logger)

	users, err := setup.InitApp(store, config.AppConfig, logger).Auth.ListUsers()
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("no users registered")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, u.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	switch config.AppConfig.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
