package catalogService

import (
	"StatMedan/internal/api/catalog"
	"StatMedan/internal/entity"
	contextPkg "StatMedan/pkg/context"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

func (s *catalogService) Load(ctx context.Context) ([]entity.Dataset, error) {
	requestID := contextPkg.GetRequestID(ctx)

	client, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create catalog client")
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogUnavailable, err)
	}

	datasets, err := client.Datasets.GetAllDatasets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrCatalogUnavailable, err)
	}

	if len(datasets) == 0 {
		return nil, catalog.ErrNoDatasets
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"datasets":   len(datasets),
	}).Info("Catalog loaded from database")

	return datasets, nil
}
