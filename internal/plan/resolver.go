package plan

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"moduledef-generator/internal/diagnostic"
	"moduledef-generator/internal/metadata"
	"moduledef-generator/internal/ngmodule"
	"moduledef-generator/internal/output"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// DefaultScopeMode applies to modules without an explicit scope mode.
	DefaultScopeMode ngmodule.SelectorScopeMode
	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		DefaultScopeMode: ngmodule.ScopeInline,
		Logger:           zap.NewNop(),
	}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	file   *metadata.File
	config ResolutionConfig
	logger *zap.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(file *metadata.File, config ResolutionConfig) *Resolver {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		file:   file,
		config: config,
		logger: logger,
	}
}

// Resolve runs the full resolution pipeline and returns a ResolvedFile.
// When validation fails the partial result carries the diagnostics and the
// returned error summarizes them.
func (r *Resolver) Resolve() (*ResolvedFile, error) {
	resolved := &ResolvedFile{}

	diags := metadata.Validate(r.file)
	resolved.Diagnostics.Merge(diags)

	if diags.HasErrors() {
		return resolved, fmt.Errorf("invalid description (%s): %w", diags.Summary(), diags.Err())
	}

	order, err := r.orderModules(&resolved.Diagnostics)
	if err != nil {
		return resolved, err
	}

	position := make(map[string]int, len(order))
	for pos, idx := range order {
		position[r.file.Modules[idx].Name] = pos
	}

	for pos, idx := range order {
		m := &r.file.Modules[idx]

		rm, err := r.resolveModule(m, pos, position, &resolved.Diagnostics)
		if err != nil {
			return resolved, fmt.Errorf("resolving %s: %w", m.Name, err)
		}

		resolved.Modules = append(resolved.Modules, rm)
	}

	for i := range r.file.Declared {
		d := &r.file.Declared[i]
		resolved.Declared = append(resolved.Declared, ResolvedDeclaration{
			Name: d.Name,
			Metadata: ngmodule.DeclarationMetadata{
				Type:         d.Type,
				Bootstrap:    d.Bootstrap,
				Declarations: d.Declarations,
				Imports:      d.Imports,
				Exports:      d.Exports,
				Schemas:      d.Schemas,
				ID:           d.ID,
			},
		})
	}

	return resolved, nil
}

// orderModules returns module indices in emission order.
func (r *Resolver) orderModules(diags *diagnostic.Diagnostics) ([]int, error) {
	modules := r.file.Modules

	index := make(map[string]int, len(modules))
	for i := range modules {
		index[modules[i].Name] = i
	}

	deps := make([][]int, len(modules))
	for i := range modules {
		for _, name := range localRefs(&modules[i]) {
			if j, ok := index[name]; ok && j != i && !slices.Contains(deps[i], j) {
				deps[i] = append(deps[i], j)
			}
		}
	}

	order, err := topoSort(len(modules), func(i int) []int { return deps[i] })
	if err == nil {
		return order, nil
	}

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		return nil, fmt.Errorf("ordering modules: %w", err)
	}

	names := make([]string, len(cycleErr.Remaining))
	for i, idx := range cycleErr.Remaining {
		names[i] = modules[idx].Name
	}

	diags.Infof(diagnostic.CodeModuleCycle, diagnostic.Subject{Field: "modules"},
		"modules %s have cyclic references; keeping declared order", strings.Join(names, ", "))
	r.logger.Debug("module graph is cyclic", zap.Strings("modules", names))

	order = make([]int, len(modules))
	for i := range order {
		order[i] = i
	}

	return order, nil
}

// resolveModule lowers a module entry into emitter metadata.
func (r *Resolver) resolveModule(
	m *metadata.Module,
	pos int,
	position map[string]int,
	diags *diagnostic.Diagnostics,
) (ResolvedModule, error) {
	mode := r.config.DefaultScopeMode
	if m.ScopeMode != "" {
		var err error

		mode, err = ngmodule.ParseSelectorScopeMode(m.ScopeMode)
		if err != nil {
			return ResolvedModule{}, err
		}
	}

	detected := false

	for _, name := range localRefs(m) {
		if p, ok := position[name]; ok && name != m.Name && p > pos {
			detected = true
			break
		}
	}

	forward := detected
	if m.ForwardRefs != nil {
		forward = *m.ForwardRefs
	} else if detected {
		diags.Infof(diagnostic.CodeForwardRefsDetected, diagnostic.OnModule(m.Name),
			"references a module emitted later; scope arrays are wrapped in closures")
	}

	typeRef := metadata.RefSpec{Value: m.Name}
	if m.Type != nil {
		typeRef = *m.Type
	}

	meta := ngmodule.Metadata{
		Type:                 toReference(typeRef),
		InternalType:         output.Variable(cmp.Or(m.InternalType, m.Name)),
		AdjacentType:         output.Variable(cmp.Or(m.AdjacentType, m.Name)),
		Bootstrap:            toReferences(m.Bootstrap),
		Declarations:         toReferences(m.Declarations),
		Imports:              toReferences(m.Imports),
		Exports:              toReferences(m.Exports),
		Schemas:              toReferences(m.Schemas),
		ContainsForwardDecls: forward,
		SelectorScopeMode:    mode,
	}

	if m.ID != nil {
		meta.ID = output.Literal(*m.ID)
	}

	r.logger.Debug("resolved module",
		zap.String("module", m.Name),
		zap.Stringer("scope_mode", mode),
		zap.Bool("forward_refs", forward),
		zap.Int("position", pos),
	)

	return ResolvedModule{
		Name:                m.Name,
		Metadata:            meta,
		ForwardRefsDetected: detected && m.ForwardRefs == nil,
	}, nil
}

// localRefs returns the in-scope symbols a module's definition evaluates.
// Schemas are excluded; they are never deferred.
func localRefs(m *metadata.Module) []string {
	var names []string

	for _, list := range []metadata.RefSpecArray{m.Bootstrap, m.Declarations, m.Imports, m.Exports} {
		for _, ref := range list {
			if ref.IsLocal() {
				names = append(names, ref.Value)
			}
		}
	}

	return names
}

func toReference(r metadata.RefSpec) ngmodule.Reference {
	if r.IsLocal() {
		return ngmodule.Reference{
			Value: output.Variable(r.Value),
			Type:  output.Variable(r.TypeName()),
		}
	}

	return ngmodule.Reference{
		Value: output.Import(r.From, r.Value),
		Type:  output.Import(r.From, r.TypeName()),
	}
}

func toReferences(refs metadata.RefSpecArray) []ngmodule.Reference {
	if len(refs) == 0 {
		return nil
	}

	out := make([]ngmodule.Reference, len(refs))
	for i, r := range refs {
		out[i] = toReference(r)
	}

	return out
}
