package gen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"moduledef-generator/internal/plan"
)

// Unit is one resolved description file awaiting generation.
type Unit struct {
	// Name is the output base name.
	Name string
	// File is the resolved plan.
	File *plan.ResolvedFile
}

// GenerateAll renders every unit, running up to config.Jobs units at once.
// Files are returned in unit order regardless of completion order. The first
// failure cancels the remaining units.
func (g *Generator) GenerateAll(ctx context.Context, units []Unit) ([]GeneratedFile, error) {
	seen := make(map[string]int, len(units))
	for i, u := range units {
		if prev, ok := seen[u.Name]; ok {
			return nil, fmt.Errorf("units %d and %d share output name %q", prev, i, u.Name)
		}

		seen[u.Name] = i
	}

	results := make([][]GeneratedFile, len(units))

	eg, ctx := errgroup.WithContext(ctx)
	if g.config.Jobs > 0 {
		eg.SetLimit(g.config.Jobs)
	}

	for i, u := range units {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			files, err := g.Generate(u.Name, u.File)
			if err != nil {
				return fmt.Errorf("generating %s: %w", u.Name, err)
			}

			results[i] = files

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []GeneratedFile
	for _, files := range results {
		out = append(out, files...)
	}

	return out, nil
}
