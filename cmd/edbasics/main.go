// Package main is the entry point for the edbasics editor host.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/edbasics/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "edbasics [file]",
		Short: "Terminal editor host for caret cloning and typed-input handlers",
		Long: `edbasics opens a file in a minimal terminal editor.

Ctrl+D clones the primary caret one line below, Ctrl+U one line above,
and Esc drops secondary carets. Typed characters go through the installed
typed handlers. Ctrl+Q quits.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.File = args[0]
			}
			return runEditor(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file")
	flags.StringVar(&opts.ManifestPath, "manifest", "", "plugin manifest replacing the built-in one")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVarP(&opts.ReadOnly, "readonly", "R", false, "open the file read-only")
	flags.StringVar(&opts.Script, "script", "", "Lua typed-input script")

	root.AddCommand(newVersionCmd(), newCommandsCmd(&opts))
	return root
}

func runEditor(opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer application.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	return application.Run()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "edbasics %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// newCommandsCmd lists the commands the manifest contributes and whether
// they are enabled for a freshly opened editor.
func newCommandsCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List editor commands and their key bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(*opts)
			if err != nil {
				return err
			}
			defer application.Shutdown()

			out := cmd.OutOrStdout()
			for _, c := range application.Commands().Commands() {
				p, err := application.Commands().Update(c.ID, application.Context())
				if err != nil {
					return err
				}
				state := "disabled"
				if p.Enabled {
					state = "enabled"
				}
				fmt.Fprintf(out, "%-36s %-8s %-9s %s\n", c.ID, c.Key, state, c.Label)
			}
			return nil
		},
	}
}
