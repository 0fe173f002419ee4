package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"moduledef-generator/internal/config"
	"moduledef-generator/internal/diagnostic"
	"moduledef-generator/internal/metadata"
	"moduledef-generator/internal/plan"
)

// app carries state shared by every subcommand.
type app struct {
	v          *viper.Viper
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "moduledef-generator",
		Short: "Compile module descriptions into module definitions",
		Long: `moduledef-generator reads YAML or TOML module descriptions and emits
module definition code: ɵɵdefineNgModule calls, selector scope side effects,
id registration, and the matching ɵɵNgModuleDeclaration types.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./moduledef.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringP("out", "o", "", "output directory")
	flags.String("mode", "", "emission mode: full or partial")
	flags.Bool("types", true, "emit .d.ts declaration files")
	flags.IntP("jobs", "j", 0, "files generated concurrently (0 = no limit)")

	for key, flag := range map[string]string{
		"output_dir": "out",
		"mode":       "mode",
		"emit_types": "types",
		"jobs":       "jobs",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(newGenCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newPrintCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) init() error {
	logger, err := newLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	a.logger = logger

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		zap.String("output_dir", cfg.OutputDir),
		zap.String("mode", cfg.Mode),
		zap.String("scope_mode", cfg.ScopeMode),
		zap.Int("jobs", cfg.Jobs))

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// resolve loads and resolves one description file. The resolved file is
// returned alongside validation errors so callers can report diagnostics.
func (a *app) resolve(path string) (*plan.ResolvedFile, error) {
	f, err := metadata.LoadFile(path)
	if err != nil {
		return nil, err
	}

	config, err := a.cfg.ResolutionConfig(a.logger)
	if err != nil {
		return nil, err
	}

	rf, err := plan.NewResolver(f, config).Resolve()
	if err != nil {
		return rf, fmt.Errorf("%s: %w", path, err)
	}

	return rf, nil
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// printDiagnostics writes one line per diagnostic, most severe first.
// Infos are only shown when verbose is set.
func printDiagnostics(cmd *cobra.Command, path string, diags *diagnostic.Diagnostics, verbose bool) {
	w := cmd.ErrOrStderr()

	for _, d := range diags.All() {
		var c *color.Color

		switch d.Severity {
		case diagnostic.SeverityError:
			c = errorColor
		case diagnostic.SeverityWarning:
			c = warningColor
		default:
			if !verbose {
				continue
			}

			c = infoColor
		}

		fmt.Fprintf(w, "%s: %s %s\n", path, c.Sprint(d.Severity.String()+":"), d.String())
	}
}
