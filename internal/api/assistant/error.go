package assistant

import "StatMedan/pkg/response"

var (
	ErrEmptyMessage        = response.NewError(400, "message must not be empty")
	ErrResponseCancelled   = response.NewError(408, "response was cancelled before it was delivered")
	ErrFailedToGenerateID  = response.NewError(500, "failed to generate message id")
	ErrCategoriesNotLoaded = response.NewError(503, "categories are not available")
)
