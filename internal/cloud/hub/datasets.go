package hub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ldxinsight/ldx-cli/internal/utils/api"
)

const (
	datasetsPath                = "/datasets"
	datasetPathPattern          = datasetsPath + "/%s"
	datasetCategoriesPath       = datasetsPath + "/categories"
	datasetsByCategoryPattern   = datasetsPath + "/category/%s"
	datasetViewPathPattern      = datasetPathPattern + "/view"
	datasetDownloadPathPattern  = datasetPathPattern + "/download"
	datasetDefaultPageSize      = 10
	datasetDefaultSort          = "createdAt"
	datasetsQueryParamQ         = "q"
	datasetsQueryParamCategory  = "category"
	paginationQueryParamPage    = "page"
	paginationQueryParamSize    = "size"
	paginationQueryParamSorting = "sort"
)

// Dataset is a published dataset
type Dataset struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Source        string    `json:"source"`
	Tags          []string  `json:"tags"`
	Category      string    `json:"category"`
	ViewCount     int64     `json:"viewCount"`
	DownloadCount int64     `json:"downloadCount"`
	Provider      string    `json:"provider"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// DatasetPage is a page of datasets
type DatasetPage struct {
	Content       []Dataset `json:"content"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int64     `json:"totalElements"`
	Size          int       `json:"size"`
	Number        int       `json:"number"`
	First         bool      `json:"first"`
	Last          bool      `json:"last"`
}

// Pagination selects a page of results
// Pages are zero-indexed and sort is formatted as "field[,asc|desc]"
type Pagination struct {
	Page int
	Size int
	Sort string
}

func (p Pagination) query() url.Values {
	size := p.Size
	if size <= 0 {
		size = datasetDefaultPageSize
	}
	sort := p.Sort
	if sort == "" {
		sort = datasetDefaultSort
	}
	return url.Values{
		paginationQueryParamPage:    {strconv.Itoa(p.Page)},
		paginationQueryParamSize:    {strconv.Itoa(size)},
		paginationQueryParamSorting: {sort},
	}
}

// DatasetFilter searches or filters the datasets
type DatasetFilter struct {
	Q        string
	Category string
	Pagination
}

// DatasetRequest is the payload to create or update a dataset
type DatasetRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Source      string   `json:"source,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Category    string   `json:"category,omitempty"`
	DataURL     string   `json:"dataUrl,omitempty"`
	Provider    string   `json:"provider,omitempty"`
}

func (c *client) Datasets(ctx context.Context, filter DatasetFilter) (DatasetPage, error) {
	query := filter.Pagination.query()
	query.Set(datasetsQueryParamQ, filter.Q)
	query.Set(datasetsQueryParamCategory, filter.Category)

	res, err := c.do(ctx, http.MethodGet, datasetsPath, api.RequestOptions{Query: query})
	if err != nil {
		return DatasetPage{}, err
	}

	var page DatasetPage
	if err := decodeJSON(res, &page); err != nil {
		return DatasetPage{}, err
	}
	return page, nil
}

func (c *client) Dataset(ctx context.Context, id string) (Dataset, error) {
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf(datasetPathPattern, url.PathEscape(id)), api.RequestOptions{})
	if err != nil {
		return Dataset{}, err
	}

	var dataset Dataset
	if err := decodeJSON(res, &dataset); err != nil {
		return Dataset{}, err
	}
	return dataset, nil
}

func (c *client) DatasetCategories(ctx context.Context) ([]string, error) {
	res, err := c.do(ctx, http.MethodGet, datasetCategoriesPath, api.RequestOptions{})
	if err != nil {
		return nil, err
	}

	var categories []string
	if err := decodeJSON(res, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *client) DatasetsByCategory(ctx context.Context, category string, pagination Pagination) (DatasetPage, error) {
	res, err := c.do(
		ctx,
		http.MethodGet,
		fmt.Sprintf(datasetsByCategoryPattern, url.PathEscape(category)),
		api.RequestOptions{Query: pagination.query()},
	)
	if err != nil {
		return DatasetPage{}, err
	}

	var page DatasetPage
	if err := decodeJSON(res, &page); err != nil {
		return DatasetPage{}, err
	}
	return page, nil
}

func (c *client) CreateDataset(ctx context.Context, req DatasetRequest) (Dataset, error) {
	res, err := c.doJSON(ctx, http.MethodPost, datasetsPath, req, api.RequestOptions{})
	if err != nil {
		return Dataset{}, err
	}

	var dataset Dataset
	if err := decodeJSON(res, &dataset); err != nil {
		return Dataset{}, err
	}
	return dataset, nil
}

func (c *client) UpdateDataset(ctx context.Context, id string, req DatasetRequest) (Dataset, error) {
	res, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf(datasetPathPattern, url.PathEscape(id)), req, api.RequestOptions{})
	if err != nil {
		return Dataset{}, err
	}

	var dataset Dataset
	if err := decodeJSON(res, &dataset); err != nil {
		return Dataset{}, err
	}
	return dataset, nil
}

func (c *client) DeleteDataset(ctx context.Context, id string) error {
	res, err := c.do(ctx, http.MethodDelete, fmt.Sprintf(datasetPathPattern, url.PathEscape(id)), api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}

func (c *client) RecordDatasetView(ctx context.Context, id string) error {
	res, err := c.do(ctx, http.MethodPost, fmt.Sprintf(datasetViewPathPattern, url.PathEscape(id)), api.RequestOptions{})
	if err != nil {
		return err
	}
	return res.Body.Close()
}

type downloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// DatasetDownloadURL returns the dataset's download link
// The server counts every call as a download
func (c *client) DatasetDownloadURL(ctx context.Context, id string) (string, error) {
	res, err := c.do(ctx, http.MethodGet, fmt.Sprintf(datasetDownloadPathPattern, url.PathEscape(id)), api.RequestOptions{})
	if err != nil {
		return "", err
	}

	var download downloadResponse
	if err := decodeJSON(res, &download); err != nil {
		return "", err
	}
	return download.DownloadURL, nil
}
