package bps

import (
	"StatMedan/internal/entity"
	"context"
	"errors"
	"fmt"
)

var ErrEmptyCatalog = errors.New("bps: catalog source returned no datasets")

// Source provides the datasets a catalog is built from.
type Source interface {
	Load(ctx context.Context) ([]entity.Dataset, error)
}

type staticSource struct{}

// NewStaticSource returns the datasets bundled with the binary.
func NewStaticSource() Source {
	return staticSource{}
}

func (staticSource) Load(context.Context) ([]entity.Dataset, error) {
	out := make([]entity.Dataset, len(staticDatasets))
	copy(out, staticDatasets)
	return out, nil
}

// Load builds a catalog from source.
func Load(ctx context.Context, source Source) (ICatalog, error) {
	datasets, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(datasets) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(datasets), nil
}
