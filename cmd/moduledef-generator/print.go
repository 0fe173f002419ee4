package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"moduledef-generator/internal/gen"
)

func newPrintCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Compile one description file and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			rf, err := a.resolve(path)
			if rf != nil {
				printDiagnostics(cmd, path, &rf.Diagnostics, a.verbose)
			}

			if err != nil {
				return err
			}

			config, err := a.cfg.GeneratorConfig(a.logger)
			if err != nil {
				return err
			}

			files, err := gen.NewGenerator(config).Generate(gen.BaseName(path), rf)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, f := range files {
				if i > 0 {
					fmt.Fprintln(w)
				}

				if len(files) > 1 {
					fmt.Fprintf(w, "// %s\n", f.Filename)
				}

				if _, err := w.Write(f.Content); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
