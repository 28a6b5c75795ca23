package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/itemdeck/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(version, app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "itemdeck: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the root command. runFn receives the parsed options.
func newRootCmd(ver string, runFn func(context.Context, app.Options) error) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "itemdeck",
		Short: "Browse the item catalog in the terminal",
		Long: "itemdeck loads the item catalog once and lets you search it by name or ID,\n" +
			"or open a contiguous block of IDs, in a paged card gallery.",
		Version:       ver,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.BatchSize < 0 {
				return fmt.Errorf("batch must be >= 0, got %d", opts.BatchSize)
			}
			return runFn(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/itemdeck/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/itemdeck/prefs.toml)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.IntVar(&opts.BatchSize, "batch", 0, "items revealed per page (default from config)")

	return cmd
}
