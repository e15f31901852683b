package catalog

import "StatMedan/pkg/response"

var (
	ErrCatalogUnavailable = response.NewError(503, "dataset catalog is unavailable")
	ErrNoDatasets         = response.NewError(503, "dataset catalog is empty")
)
