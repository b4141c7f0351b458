package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logstats/internal/app"
	"logstats/internal/cli"
	"logstats/internal/shared/configs"
	"logstats/internal/shared/loggers"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServe(os.Args[2:])
		return
	}
	runAnalysis(os.Args[1:])
}

// runAnalysis performs a one-shot run: parse flags, process the input files,
// write the summary to the output file.
func runAnalysis(argv []string) {
	args, err := cli.Parse(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logstats: %v\n", err)
		os.Exit(2)
	}

	if args.Metrics.IsEmpty() {
		fmt.Println("Please, run the tool with at least one metric flag (--mfip, --lfip, --eps, --bytes).")
		return
	}

	logger, err := loggers.NewConsole(args.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logstats: invalid log level: %v\n", err)
		os.Exit(2)
	}

	opts := app.RunOptions{
		InputPaths:  args.InputPaths,
		OutputPath:  args.OutputPath,
		Metrics:     args.Metrics,
		Format:      args.Format,
		Concurrency: args.Concurrency,
	}
	if err := app.RunAnalysis(context.Background(), logger, opts); err != nil {
		fmt.Fprintf(os.Stderr, "logstats: %v\n", err)
		os.Exit(1)
	}
}

// runServe starts the HTTP API and blocks until interrupted.
func runServe(argv []string) {
	args, err := cli.ParseServe(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logstats serve: %v\n", err)
		os.Exit(2)
	}

	cfg, err := configs.LoadConfig(args.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	go func() {
		if err := application.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Println("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
	}
}
