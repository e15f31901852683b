package catalogRepository

import (
	"StatMedan/internal/entity"
	contextPkg "StatMedan/pkg/context"
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type DatasetDB struct {
	ID          sql.NullString `db:"id"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	Category    sql.NullString `db:"category"`
	URL         sql.NullString `db:"url"`
	Keywords    sql.NullString `db:"keywords"`
	Year        sql.NullInt64  `db:"year"`
}

func (r *datasetRepository) GetAllDatasets(ctx context.Context) ([]entity.Dataset, error) {
	return r.selectDatasets(ctx, "GetAllDatasets", queryGetAllDatasets, map[string]interface{}{})
}

func (r *datasetRepository) GetDatasetsByCategory(ctx context.Context, category string) ([]entity.Dataset, error) {
	return r.selectDatasets(ctx, "GetDatasetsByCategory", queryGetDatasetsByCategory, map[string]interface{}{
		"category": category,
	})
}

func (r *datasetRepository) selectDatasets(ctx context.Context, operation, namedQuery string, argsKV map[string]interface{}) ([]entity.Dataset, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []DatasetDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return nil, err
	}

	datasets := make([]entity.Dataset, 0, len(rows))
	for _, row := range rows {
		if !row.URL.Valid || row.URL.String == "" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"dataset_id": row.ID.String,
			}).Warn("Skipping dataset without url")
			continue
		}
		datasets = append(datasets, r.makeDataset(row))
	}

	return datasets, nil
}

func (r *datasetRepository) makeDataset(row DatasetDB) entity.Dataset {
	return entity.Dataset{
		ID:          row.ID.String,
		Title:       row.Title.String,
		Description: row.Description.String,
		Category:    row.Category.String,
		URL:         row.URL.String,
		Keywords:    splitKeywords(row.Keywords.String),
		Year:        int(row.Year.Int64),
	}
}

// splitKeywords parses the comma separated keywords column.
func splitKeywords(raw string) []string {
	keywords := make([]string, 0)
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
