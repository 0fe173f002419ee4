package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// The version command needs no configuration.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			version := Version
			if info, ok := debug.ReadBuildInfo(); ok && version == "dev" && info.Main.Version != "" {
				version = info.Main.Version
			}

			title := color.New(color.FgCyan, color.Bold)
			w := cmd.OutOrStdout()

			title.Fprint(w, "moduledef-generator version: ")
			fmt.Fprintln(w, version)
			title.Fprint(w, "Git commit: ")
			fmt.Fprintln(w, GitCommit)
			title.Fprint(w, "Go version: ")
			fmt.Fprintln(w, runtime.Version())
		},
	}
}
