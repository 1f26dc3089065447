package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikigeo/onthisday/internal/config"
	"github.com/wikigeo/onthisday/internal/extract"
	"github.com/wikigeo/onthisday/internal/logger"
	"github.com/wikigeo/onthisday/internal/wiki"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNoEvents = 2
)

var (
	flagMonth   string
	flagDay     int
	flagFormat  string
	flagConfig  string
	flagVerbose bool
	flagNoCache bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onthisday",
		Short: "Extract located historical events for a day of the year",
		Long: `Extract historical events for a given month and day from the
encyclopedia's "on this day" page, resolving linked pages to geographic
coordinates. Only events with at least one located link are reported.`,
		RunE: runExtract,
	}

	cmd.Flags().StringVar(&flagMonth, "month", "", "Full month name, e.g. July (required)")
	cmd.Flags().IntVar(&flagDay, "day", 0, "Day of the month (required)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Disable the per-run page lookup cache")

	cmd.MarkFlagRequired("month") // nolint:errcheck
	cmd.MarkFlagRequired("day")   // nolint:errcheck

	return cmd
}

// runExtract is the main command logic
func runExtract(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if err := config.ValidateDate(flagMonth, flagDay); err != nil {
		return err
	}

	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	level := logger.ParseLevel(cfg.Logging.Level)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	client := wiki.New(wiki.Config{
		BaseURL:   cfg.Site.BaseURL,
		RestURL:   cfg.Site.RestURL,
		UserAgent: cfg.Site.UserAgent,
		Timeout:   cfg.FetchTimeout(),
		Retry: wiki.RetryPolicy{
			MaxAttempts:  cfg.Fetch.Retry.MaxAttempts,
			InitialDelay: time.Duration(cfg.Fetch.Retry.InitialDelayMs) * time.Millisecond,
			MaxDelay:     time.Duration(cfg.Fetch.Retry.MaxDelayMs) * time.Millisecond,
			Multiplier:   cfg.Fetch.Retry.BackoffMultiplier,
		},
	})

	var resolver extract.Resolver = extract.NewResolver(client, cfg.LookupTimeout())
	if !flagNoCache && cfg.Resolve.CacheSize > 0 {
		resolver = extract.NewCachedResolver(resolver, cfg.Resolve.CacheSize)
	}

	extractor := extract.New(client, resolver, extract.Config{
		BaseURL: cfg.Site.BaseURL,
		Workers: cfg.Resolve.Workers,
	})

	logger.Info("extracting events", logger.Fields{
		"month": flagMonth,
		"day":   flagDay,
		"url":   client.DayPageURL(flagMonth, flagDay),
	})

	calls, events, err := extractor.EventsOnDay(cmd.Context(), flagMonth, flagDay)
	if err != nil {
		return fmt.Errorf("extracting events: %w", err)
	}

	result := &OutputResult{
		CheckedAt:  time.Now().UTC(),
		Month:      flagMonth,
		Day:        flagDay,
		Events:     events,
		EventCount: len(events),
		WikiCalls:  calls,
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(events) == 0 {
		os.Exit(ExitNoEvents)
	}
	os.Exit(ExitSuccess)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
