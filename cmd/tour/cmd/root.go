package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/comalice/langtour/internal/core"
	"github.com/comalice/langtour/internal/extensibility"
	"github.com/comalice/langtour/internal/lessons"
	"github.com/comalice/langtour/internal/primitives"
	"github.com/comalice/langtour/internal/production"
)

// options holds the flags shared by every command.
type options struct {
	config        string
	only          []string
	tags          []string
	verbose       bool
	transcriptDir string
	format        formatValue
}

// formatValue is the --format flag: the transcript encoding.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	switch s {
	case "json", "yaml", "toml":
		*f = formatValue(s)
		return nil
	default:
		return fmt.Errorf("must be one of json, yaml, toml")
	}
}

func (f *formatValue) Type() string { return "format" }

// NewRootCmd builds the tour command tree. Running the root command without
// a subcommand runs the whole tour.
func NewRootCmd() *cobra.Command {
	opts := &options{format: "json"}

	rootCmd := &cobra.Command{
		Use:           "tour",
		Short:         "walk through the basics of the language, one lesson at a time",
		Long:          ``,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "",
		"path of a YAML or TOML tour file (lesson order and skips)")
	flags.StringSliceVarP(&opts.only, "only", "o", nil,
		"run only these lesson IDs")
	flags.StringSliceVarP(&opts.tags, "tag", "t", nil,
		"run only lessons carrying one of these tags")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"log each lesson to stderr")
	flags.StringVarP(&opts.transcriptDir, "transcript-dir", "d", "",
		"save the run transcript into this directory")
	flags.VarP(&opts.format, "format", "f",
		"transcript encoding: json, yaml or toml")

	rootCmd.AddCommand(newRunCmd(opts), newListCmd(opts), newGraphCmd(opts))
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure. An interrupt
// stops the tour between lessons.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "tour: %v\n", err)
		os.Exit(1)
	}
}

// newInjector registers the tour and its components, configured from the
// shared flags. Services are built lazily on first invocation.
func newInjector(cmd *cobra.Command, opts *options) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, log.New(cmd.ErrOrStderr(), "tour: ", log.LstdFlags))

	do.Provide(injector, func(i *do.Injector) (primitives.TourConfig, error) {
		if opts.config == "" {
			return primitives.DefaultTourConfig(), nil
		}
		return primitives.LoadTourConfigFile(opts.config)
	})

	do.Provide(injector, func(i *do.Injector) (core.Runner, error) {
		var runner core.Runner = &extensibility.DefaultRunner{}
		if opts.verbose {
			runner = extensibility.NewLoggingRunner(runner, do.MustInvoke[*log.Logger](i))
		}
		return runner, nil
	})

	do.Provide(injector, func(i *do.Injector) (core.Visualizer, error) {
		return &production.DefaultVisualizer{}, nil
	})

	if opts.transcriptDir != "" {
		do.Provide(injector, func(i *do.Injector) (core.Persister, error) {
			return production.NewPersister(opts.format.String(), opts.transcriptDir)
		})
	}

	do.Provide(injector, func(i *do.Injector) (*core.Tour, error) {
		config, err := do.Invoke[primitives.TourConfig](i)
		if err != nil {
			return nil, err
		}

		tourOpts := []core.Option{
			core.WithRunner(do.MustInvoke[core.Runner](i)),
			core.WithLogger(do.MustInvoke[*log.Logger](i)),
			core.WithVisualizer(do.MustInvoke[core.Visualizer](i)),
		}

		var filters extensibility.AllFilter
		if len(opts.only) > 0 {
			filters = append(filters, extensibility.NewIDFilter(opts.only...))
		}
		if len(opts.tags) > 0 {
			filters = append(filters, extensibility.NewTagFilter(opts.tags...))
		}
		if len(filters) > 0 {
			tourOpts = append(tourOpts, core.WithFilter(filters))
		}

		if opts.transcriptDir != "" {
			persister, err := do.Invoke[core.Persister](i)
			if err != nil {
				return nil, err
			}
			tourOpts = append(tourOpts, core.WithPersister(persister))
		}

		return core.NewTour(config, lessons.Catalog(), tourOpts...), nil
	})

	return injector
}

// buildTour assembles a Tour from the shared flags.
func buildTour(cmd *cobra.Command, opts *options) (*core.Tour, error) {
	tour, err := do.Invoke[*core.Tour](newInjector(cmd, opts))
	if err != nil {
		return nil, err
	}
	if err := checkOnly(tour, opts.only); err != nil {
		return nil, err
	}
	return tour, nil
}

// checkOnly rejects --only IDs that name no lesson, so a typo fails loudly
// instead of silently running nothing.
func checkOnly(tour *core.Tour, only []string) error {
	known := make(map[string]bool)
	for _, l := range lessons.Catalog() {
		known[l.ID] = true
	}
	for _, id := range only {
		if !known[id] {
			return fmt.Errorf("--only %q: %w", id, primitives.ErrUnknownLesson)
		}
	}
	_, err := tour.Lessons()
	return err
}
