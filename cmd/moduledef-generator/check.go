package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("check failed")

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate description files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0

			for _, path := range args {
				rf, err := a.resolve(path)
				if rf != nil {
					printDiagnostics(cmd, path, &rf.Diagnostics, a.verbose)
				}

				if err != nil {
					if rf == nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s %v\n", path, errorColor.Sprint("error:"), err)
					} else {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, rf.Diagnostics.Summary())
					}

					failed++

					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d modules, %d declared; %s)\n",
					path, color.GreenString("ok"), len(rf.Modules), len(rf.Declared), rf.Diagnostics.Summary())
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errCheckFailed, failed, len(args))
			}

			return nil
		},
	}
}
