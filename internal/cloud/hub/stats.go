package hub

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ldxinsight/ldx-cli/internal/utils/api"
)

const (
	statsPath              = "/stats"
	statsSummaryPath       = statsPath + "/summary"
	statsByCategoryPath    = statsPath + "/by-category"
	statsTopViewedPath     = statsPath + "/top-viewed"
	statsTopDownloadedPath = statsPath + "/top-downloaded"

	statsQueryParamLimit = "limit"

	// DefaultTopLimit is the number of datasets ranked by default
	DefaultTopLimit = 5
)

// StatsSummary is the portal usage summary
type StatsSummary struct {
	TotalDatasets  int64 `json:"totalDatasets"`
	TotalViews     int64 `json:"totalViews"`
	TotalDownloads int64 `json:"totalDownloads"`
}

// CategoryStat is the number of datasets in a category
type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func (c *client) StatsSummary(ctx context.Context) (StatsSummary, error) {
	res, err := c.do(ctx, http.MethodGet, statsSummaryPath, api.RequestOptions{})
	if err != nil {
		return StatsSummary{}, err
	}

	var summary StatsSummary
	if err := decodeJSON(res, &summary); err != nil {
		return StatsSummary{}, err
	}
	return summary, nil
}

func (c *client) StatsByCategory(ctx context.Context) ([]CategoryStat, error) {
	res, err := c.do(ctx, http.MethodGet, statsByCategoryPath, api.RequestOptions{})
	if err != nil {
		return nil, err
	}

	var stats []CategoryStat
	if err := decodeJSON(res, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *client) TopViewedDatasets(ctx context.Context, limit int) ([]Dataset, error) {
	return c.topDatasets(ctx, statsTopViewedPath, limit)
}

func (c *client) TopDownloadedDatasets(ctx context.Context, limit int) ([]Dataset, error) {
	return c.topDatasets(ctx, statsTopDownloadedPath, limit)
}

func (c *client) topDatasets(ctx context.Context, path string, limit int) ([]Dataset, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	res, err := c.do(ctx, http.MethodGet, path, api.RequestOptions{
		Query: url.Values{statsQueryParamLimit: {strconv.Itoa(limit)}},
	})
	if err != nil {
		return nil, err
	}

	var datasets []Dataset
	if err := decodeJSON(res, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}
