package gen

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"moduledef-generator/internal/identifiers"
	"moduledef-generator/internal/ngmodule"
	"moduledef-generator/internal/output"
	"moduledef-generator/internal/plan"
)

// Header is the first line of every generated file.
const Header = "// Code generated by moduledef-generator. DO NOT EDIT."

// ErrInvalidPlan is returned when a plan still carries error diagnostics.
var ErrInvalidPlan = errors.New("plan has errors")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// EmitTypes enables the ".d.ts" companion file.
	EmitTypes bool
	// Mode selects full definitions or partial declarations.
	Mode Mode
	// Emitter configures the module definition emitter.
	Emitter ngmodule.EmitterConfig
	// Jobs bounds the number of files generated concurrently by GenerateAll.
	// Zero or less means no limit.
	Jobs int
	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir: "./generated",
		EmitTypes: true,
		Mode:      ModeFull,
		Emitter:   ngmodule.DefaultEmitterConfig(),
		Jobs:      4,
		Logger:    zap.NewNop(),
	}
}

// Generator renders resolved plans.
type Generator struct {
	config  GeneratorConfig
	emitter *ngmodule.Emitter
	ids     *identifiers.Table
	logger  *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Mode == "" {
		config.Mode = ModeFull
	}

	if config.Emitter.Identifiers == nil {
		config.Emitter.Identifiers = identifiers.Default()
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		config:  config,
		emitter: ngmodule.NewEmitter(config.Emitter),
		ids:     config.Emitter.Identifiers,
		logger:  logger,
	}
}

// GeneratedFile represents a generated output file.
type GeneratedFile struct {
	// Filename is relative to the output directory.
	Filename string
	// Content is the file body.
	Content []byte
}

// BaseName derives the output base name from a description file path:
// "src/app.module.yaml" becomes "app.module".
func BaseName(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Generate renders one resolved file. name is the output base name.
func (g *Generator) Generate(name string, rf *plan.ResolvedFile) ([]GeneratedFile, error) {
	if rf == nil {
		return nil, errors.New("resolved file is nil")
	}

	if name == "" {
		return nil, errors.New("output name is empty")
	}

	if rf.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrInvalidPlan, rf.Diagnostics.Err())
	}

	compiled := make([]ngmodule.CompiledDefinition, len(rf.Modules))
	for i := range rf.Modules {
		compiled[i] = g.compile(&rf.Modules[i].Metadata)
	}

	files := []GeneratedFile{{
		Filename: name + ".js",
		Content:  g.renderScript(rf, compiled),
	}}

	if g.config.EmitTypes && len(rf.Modules) > 0 {
		files = append(files, GeneratedFile{
			Filename: name + ".d.ts",
			Content:  g.renderTypes(rf, compiled),
		})
	}

	g.logger.Debug("generated",
		zap.String("name", name),
		zap.String("mode", string(g.config.Mode)),
		zap.Int("modules", len(rf.Modules)),
		zap.Int("declared", len(rf.Declared)),
		zap.Int("files", len(files)))

	return files, nil
}

func (g *Generator) compile(meta *ngmodule.Metadata) ngmodule.CompiledDefinition {
	if g.config.Mode == ModePartial {
		return g.emitter.CompileDeclareNgModuleFromMetadata(meta)
	}

	return g.emitter.CompileNgModule(meta)
}

func (g *Generator) renderScript(rf *plan.ResolvedFile, compiled []ngmodule.CompiledDefinition) []byte {
	imports := output.NewImportManager()
	imports.Alias(g.ids.CoreModule())

	p := output.NewPrinter(imports)

	var body strings.Builder

	for i, m := range rf.Modules {
		body.WriteString("\n")
		fmt.Fprintf(&body, "export class %s {}\n", m.Name)
		fmt.Fprintf(&body, "%s.ɵmod = %s;\n", m.Name, p.Expression(compiled[i].Expression))

		for _, stmt := range compiled[i].Statements {
			body.WriteString(p.Statement(stmt))
			body.WriteString("\n")
		}
	}

	for _, d := range rf.Declared {
		expr := g.emitter.CompileNgModuleDeclarationExpression(&d.Metadata)

		body.WriteString("\n")
		fmt.Fprintf(&body, "export class %s {}\n", d.Name)
		fmt.Fprintf(&body, "%s.ɵmod = %s;\n", d.Name, p.Expression(expr))
	}

	return assemble(imports, body.String())
}

func (g *Generator) renderTypes(rf *plan.ResolvedFile, compiled []ngmodule.CompiledDefinition) []byte {
	imports := output.NewImportManager()
	imports.Alias(g.ids.CoreModule())

	p := output.NewPrinter(imports)

	var body strings.Builder

	body.WriteString("\n")

	for i, m := range rf.Modules {
		fmt.Fprintf(&body, "export declare class %s { static ɵmod: %s; }\n", m.Name, p.Type(compiled[i].Type))
	}

	return assemble(imports, body.String())
}

func assemble(imports *output.ImportManager, body string) []byte {
	var sb strings.Builder

	sb.WriteString(Header)
	sb.WriteString("\n")
	sb.WriteString(imports.Render())
	sb.WriteString(body)

	return []byte(sb.String())
}
