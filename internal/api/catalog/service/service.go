package catalogService

import (
	catalogRepository "StatMedan/internal/api/catalog/repository"
	"StatMedan/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
)

// ICatalogService loads the dataset catalog from Postgres. It satisfies
// bps.Source.
type ICatalogService interface {
	Load(ctx context.Context) ([]entity.Dataset, error)
}

type catalogService struct {
	log         *logrus.Logger
	catalogRepo catalogRepository.Repository
}

func New(log *logrus.Logger, catalogRepo catalogRepository.Repository) ICatalogService {
	return &catalogService{
		log:         log,
		catalogRepo: catalogRepo,
	}
}
