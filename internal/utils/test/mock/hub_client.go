package mock

import (
	"context"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
)

// HubClient is a mocked Open Linked Hub client
type HubClient struct {
	hub.Client
	LoginFn                 func(ctx context.Context, creds hub.Credentials) (auth.Session, error)
	RegisterFn              func(ctx context.Context, creds hub.Credentials) (auth.Session, error)
	RefreshFn               func(ctx context.Context, refreshToken string) (auth.Session, error)
	MetadataFn              func(ctx context.Context) (hub.Metadata, error)
	DatasetsFn              func(ctx context.Context, filter hub.DatasetFilter) (hub.DatasetPage, error)
	DatasetFn               func(ctx context.Context, id string) (hub.Dataset, error)
	DatasetCategoriesFn     func(ctx context.Context) ([]string, error)
	DatasetsByCategoryFn    func(ctx context.Context, category string, pagination hub.Pagination) (hub.DatasetPage, error)
	CreateDatasetFn         func(ctx context.Context, req hub.DatasetRequest) (hub.Dataset, error)
	UpdateDatasetFn         func(ctx context.Context, id string, req hub.DatasetRequest) (hub.Dataset, error)
	DeleteDatasetFn         func(ctx context.Context, id string) error
	RecordDatasetViewFn     func(ctx context.Context, id string) error
	DatasetDownloadURLFn    func(ctx context.Context, id string) (string, error)
	StatsSummaryFn          func(ctx context.Context) (hub.StatsSummary, error)
	StatsByCategoryFn       func(ctx context.Context) ([]hub.CategoryStat, error)
	TopViewedDatasetsFn     func(ctx context.Context, limit int) ([]hub.Dataset, error)
	TopDownloadedDatasetsFn func(ctx context.Context, limit int) ([]hub.Dataset, error)
	UsersFn                 func(ctx context.Context) ([]hub.User, error)
	UserFn                  func(ctx context.Context, studentCode string) (hub.User, error)
	UserByIDFn              func(ctx context.Context, id string) (hub.User, error)
	ForecastFn              func(ctx context.Context, req hub.ForecastRequest) (hub.Forecast, error)
	SimulateFn              func(ctx context.Context, req hub.SimulationRequest) (hub.Forecast, error)
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Login(ctx context.Context, creds hub.Credentials) (auth.Session, error) {
	if hc.LoginFn != nil {
		return hc.LoginFn(ctx, creds)
	}
	return hc.Client.Login(ctx, creds)
}

// Register calls the mocked Register implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Register(ctx context.Context, creds hub.Credentials) (auth.Session, error) {
	if hc.RegisterFn != nil {
		return hc.RegisterFn(ctx, creds)
	}
	return hc.Client.Register(ctx, creds)
}

// Refresh calls the mocked Refresh implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Refresh(ctx context.Context, refreshToken string) (auth.Session, error) {
	if hc.RefreshFn != nil {
		return hc.RefreshFn(ctx, refreshToken)
	}
	return hc.Client.Refresh(ctx, refreshToken)
}

// Metadata calls the mocked Metadata implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Metadata(ctx context.Context) (hub.Metadata, error) {
	if hc.MetadataFn != nil {
		return hc.MetadataFn(ctx)
	}
	return hc.Client.Metadata(ctx)
}

// Datasets calls the mocked Datasets implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Datasets(ctx context.Context, filter hub.DatasetFilter) (hub.DatasetPage, error) {
	if hc.DatasetsFn != nil {
		return hc.DatasetsFn(ctx, filter)
	}
	return hc.Client.Datasets(ctx, filter)
}

// Dataset calls the mocked Dataset implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Dataset(ctx context.Context, id string) (hub.Dataset, error) {
	if hc.DatasetFn != nil {
		return hc.DatasetFn(ctx, id)
	}
	return hc.Client.Dataset(ctx, id)
}

// DatasetCategories calls the mocked DatasetCategories implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) DatasetCategories(ctx context.Context) ([]string, error) {
	if hc.DatasetCategoriesFn != nil {
		return hc.DatasetCategoriesFn(ctx)
	}
	return hc.Client.DatasetCategories(ctx)
}

// DatasetsByCategory calls the mocked DatasetsByCategory implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) DatasetsByCategory(ctx context.Context, category string, pagination hub.Pagination) (hub.DatasetPage, error) {
	if hc.DatasetsByCategoryFn != nil {
		return hc.DatasetsByCategoryFn(ctx, category, pagination)
	}
	return hc.Client.DatasetsByCategory(ctx, category, pagination)
}

// CreateDataset calls the mocked CreateDataset implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) CreateDataset(ctx context.Context, req hub.DatasetRequest) (hub.Dataset, error) {
	if hc.CreateDatasetFn != nil {
		return hc.CreateDatasetFn(ctx, req)
	}
	return hc.Client.CreateDataset(ctx, req)
}

// UpdateDataset calls the mocked UpdateDataset implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) UpdateDataset(ctx context.Context, id string, req hub.DatasetRequest) (hub.Dataset, error) {
	if hc.UpdateDatasetFn != nil {
		return hc.UpdateDatasetFn(ctx, id, req)
	}
	return hc.Client.UpdateDataset(ctx, id, req)
}

// DeleteDataset calls the mocked DeleteDataset implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) DeleteDataset(ctx context.Context, id string) error {
	if hc.DeleteDatasetFn != nil {
		return hc.DeleteDatasetFn(ctx, id)
	}
	return hc.Client.DeleteDataset(ctx, id)
}

// RecordDatasetView calls the mocked RecordDatasetView implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) RecordDatasetView(ctx context.Context, id string) error {
	if hc.RecordDatasetViewFn != nil {
		return hc.RecordDatasetViewFn(ctx, id)
	}
	return hc.Client.RecordDatasetView(ctx, id)
}

// DatasetDownloadURL calls the mocked DatasetDownloadURL implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) DatasetDownloadURL(ctx context.Context, id string) (string, error) {
	if hc.DatasetDownloadURLFn != nil {
		return hc.DatasetDownloadURLFn(ctx, id)
	}
	return hc.Client.DatasetDownloadURL(ctx, id)
}

// StatsSummary calls the mocked StatsSummary implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) StatsSummary(ctx context.Context) (hub.StatsSummary, error) {
	if hc.StatsSummaryFn != nil {
		return hc.StatsSummaryFn(ctx)
	}
	return hc.Client.StatsSummary(ctx)
}

// StatsByCategory calls the mocked StatsByCategory implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) StatsByCategory(ctx context.Context) ([]hub.CategoryStat, error) {
	if hc.StatsByCategoryFn != nil {
		return hc.StatsByCategoryFn(ctx)
	}
	return hc.Client.StatsByCategory(ctx)
}

// TopViewedDatasets calls the mocked TopViewedDatasets implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) TopViewedDatasets(ctx context.Context, limit int) ([]hub.Dataset, error) {
	if hc.TopViewedDatasetsFn != nil {
		return hc.TopViewedDatasetsFn(ctx, limit)
	}
	return hc.Client.TopViewedDatasets(ctx, limit)
}

// TopDownloadedDatasets calls the mocked TopDownloadedDatasets implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) TopDownloadedDatasets(ctx context.Context, limit int) ([]hub.Dataset, error) {
	if hc.TopDownloadedDatasetsFn != nil {
		return hc.TopDownloadedDatasetsFn(ctx, limit)
	}
	return hc.Client.TopDownloadedDatasets(ctx, limit)
}

// Users calls the mocked Users implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Users(ctx context.Context) ([]hub.User, error) {
	if hc.UsersFn != nil {
		return hc.UsersFn(ctx)
	}
	return hc.Client.Users(ctx)
}

// User calls the mocked User implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) User(ctx context.Context, studentCode string) (hub.User, error) {
	if hc.UserFn != nil {
		return hc.UserFn(ctx, studentCode)
	}
	return hc.Client.User(ctx, studentCode)
}

// UserByID calls the mocked UserByID implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) UserByID(ctx context.Context, id string) (hub.User, error) {
	if hc.UserByIDFn != nil {
		return hc.UserByIDFn(ctx, id)
	}
	return hc.Client.UserByID(ctx, id)
}

// Forecast calls the mocked Forecast implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Forecast(ctx context.Context, req hub.ForecastRequest) (hub.Forecast, error) {
	if hc.ForecastFn != nil {
		return hc.ForecastFn(ctx, req)
	}
	return hc.Client.Forecast(ctx, req)
}

// Simulate calls the mocked Simulate implementation if provided,
// otherwise the call falls back to the underlying hub.Client implementation.
// NOTE: this may panic if the underlying hub.Client is left undefined
func (hc HubClient) Simulate(ctx context.Context, req hub.SimulationRequest) (hub.Forecast, error) {
	if hc.SimulateFn != nil {
		return hc.SimulateFn(ctx, req)
	}
	return hc.Client.Simulate(ctx, req)
}
