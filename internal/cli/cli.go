package cli

import (
	"fmt"
	"strings"

	"logstats/internal/models"
	"logstats/internal/shared/validators"

	"github.com/spf13/pflag"
)

// Args is the validated result of command-line parsing for an analysis run:
// the input paths, the output path, the requested metric set, and run
// settings. The core never re-validates these.
type Args struct {
	InputPaths  []string `validate:"required,min=1,dive,required"`
	OutputPath  string   `validate:"required"`
	Metrics     models.MetricSet
	Format      string `validate:"required,oneof=json text"`
	Concurrency int    `validate:"required,min=1"`
	LogLevel    string `validate:"required"`
}

// ServeArgs holds serve-mode flags.
type ServeArgs struct {
	ConfigPath string `validate:"required"`
}

// Parse parses analysis-mode arguments: INPUT... OUTPUT plus metric and run
// flags. An empty metric set is not an error here; the caller decides how to
// report it (the tool prints usage guidance and exits cleanly).
func Parse(argv []string) (*Args, error) {
	flags := pflag.NewFlagSet("logstats", pflag.ContinueOnError)
	mfip := flags.Bool("mfip", false, "Most frequent IP.")
	lfip := flags.Bool("lfip", false, "Least frequent IP.")
	eps := flags.Bool("eps", false, "Events per second.")
	totalBytes := flags.Bool("bytes", false, "Total amount of bytes exchanged.")
	format := flags.String("format", "json", "Output format: json or text.")
	concurrency := flags.Int("concurrency", 1, "Number of input files scanned in parallel.")
	logLevel := flags.String("log-level", "warn", "Log level for diagnostics on stderr.")

	if err := flags.Parse(argv); err != nil {
		return nil, err
	}

	positional := flags.Args()
	if len(positional) < 2 {
		return nil, fmt.Errorf("expected at least one input file and an output file, got %d argument(s)", len(positional))
	}

	args := &Args{
		InputPaths:  positional[:len(positional)-1],
		OutputPath:  positional[len(positional)-1],
		Format:      strings.ToLower(*format),
		Concurrency: *concurrency,
		LogLevel:    *logLevel,
	}
	if *mfip {
		args.Metrics.MostFrequentIP = true
	}
	if *lfip {
		args.Metrics.LeastFrequentIP = true
	}
	if *eps {
		args.Metrics.EventsPerSecond = true
	}
	if *totalBytes {
		args.Metrics.TotalBytes = true
	}

	if err := validators.New().Struct(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	return args, nil
}

// ParseServe parses serve-mode arguments.
func ParseServe(argv []string) (*ServeArgs, error) {
	flags := pflag.NewFlagSet("logstats serve", pflag.ContinueOnError)
	configPath := flags.String("config", "./configs/configs.yml", "Path to the YAML config file.")

	if err := flags.Parse(argv); err != nil {
		return nil, err
	}

	args := &ServeArgs{ConfigPath: *configPath}
	if err := validators.New().Struct(args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	return args, nil
}
