package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moduledef-generator/internal/gen"
)

func newGenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gen <file>...",
		Short: "Generate module definitions into the output directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units := make([]gen.Unit, 0, len(args))

			for _, path := range args {
				rf, err := a.resolve(path)
				if rf != nil {
					printDiagnostics(cmd, path, &rf.Diagnostics, a.verbose)
				}

				if err != nil {
					return err
				}

				units = append(units, gen.Unit{Name: gen.BaseName(path), File: rf})
			}

			config, err := a.cfg.GeneratorConfig(a.logger)
			if err != nil {
				return err
			}

			files, err := gen.NewGenerator(config).GenerateAll(cmd.Context(), units)
			if err != nil {
				return err
			}

			written, err := gen.WriteFiles(files, config.OutputDir)
			if err != nil {
				return err
			}

			a.logger.Debug("generation finished",
				zap.Int("inputs", len(units)),
				zap.Int("files", len(files)),
				zap.Int("written", written))

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d of %d files in %s\n",
				color.GreenString("wrote"), written, len(files), config.OutputDir)

			return nil
		},
	}
}
