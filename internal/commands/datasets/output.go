package datasets

import (
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
)

const (
	headerID        = "ID"
	headerTitle     = "Title"
	headerCategory  = "Category"
	headerProvider  = "Provider"
	headerViews     = "Views"
	headerDownloads = "Downloads"
)

var tableHeaders = []string{headerID, headerTitle, headerCategory, headerProvider, headerViews, headerDownloads}

// TableRows returns the table rows of the provided datasets
func TableRows(datasets []hub.Dataset) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(datasets))
	for _, dataset := range datasets {
		rows = append(rows, map[string]interface{}{
			headerID:        dataset.ID,
			headerTitle:     dataset.Title,
			headerCategory:  dataset.Category,
			headerProvider:  dataset.Provider,
			headerViews:     dataset.ViewCount,
			headerDownloads: dataset.DownloadCount,
		})
	}
	return rows
}

// TableHeaders returns the table headers of datasets
func TableHeaders() []string {
	return append([]string{}, tableHeaders...)
}
