package catalogRepository

const (
	queryGetAllDatasets = `
		SELECT
			id, title, description, category, url, keywords, year
		FROM bps_datasets
		ORDER BY id
	`

	queryGetDatasetsByCategory = `
		SELECT
			id, title, description, category, url, keywords, year
		FROM bps_datasets
		WHERE category = :category
		ORDER BY id
	`
)
