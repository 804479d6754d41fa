package layout

import (
	"context"

	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// ImportInfo is the layout description supplied alongside an externally
// produced handle.
type ImportInfo struct {
	Modifier Modifier
	// Stride is the level-0 row pitch in bytes the producer laid the resource
	// out with
	Stride int
	// Offset is the byte offset of the resource within the imported backing
	// memory
	Offset int
}

// PlanImported reconstructs the layout for an externally produced resource.
// The layout is recomputed from the descriptor exactly as Plan would, then the
// computed level-0 stride is checked against the producer's stride: a mismatch
// is an IncompatibleLayoutError, because every subsequent geometry computation
// would address the wrong bytes. Only linear imports are supported.
func (p *Planner) PlanImported(desc Descriptor, imp ImportInfo) (*Layout, error) {
	switch imp.Modifier {
	case ModifierLinear:
	default:
		return nil, cerrors.Wrapf(InvalidDescriptorError, "cannot import modifier %#016x", uint64(imp.Modifier))
	}

	if imp.Offset != 0 {
		return nil, cerrors.Wrapf(InvalidDescriptorError, "cannot import a resource at nonzero offset %d", imp.Offset)
	}

	layout, err := p.PlanWithModifiers(desc, []Modifier{ModifierLinear})
	if err != nil {
		return nil, err
	}

	computedStride := layout.levels[0].Stride
	if imp.Stride != computedStride {
		p.logger.LogAttrs(context.Background(), slog.LevelWarn, "import stride does not match the computed layout",
			slog.Int("width", desc.Width),
			slog.Int("height", desc.Height),
			slog.String("format", desc.Format.String()),
			slog.Int("importedStride", imp.Stride),
			slog.Int("computedStride", computedStride))

		return nil, cerrors.Wrapf(IncompatibleLayoutError, "imported stride is %d, hardware requires %d", imp.Stride, computedStride)
	}

	p.logLayout(layout, "import")

	return layout, nil
}
