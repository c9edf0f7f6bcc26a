package hub

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/ldxinsight/ldx-cli/internal/utils/api"
)

const (
	metadataPath = "/metadata"
	forecastPath = "/forecast"
	simulatePath = "/simulate"
)

// Metadata describes the DTI Predictor model
type Metadata map[string]interface{}

// FeatureVector is a set of DTI model features, each ratio between 0 and 1
type FeatureVector map[string]float64

// Keys returns the sorted feature names
func (fv FeatureVector) Keys() []string {
	keys := make([]string, 0, len(fv))
	for key := range fv {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks every feature ratio lies between 0 and 1
func (fv FeatureVector) Validate() error {
	for _, key := range fv.Keys() {
		if v := fv[key]; v < 0 || v > 1 {
			return fmt.Errorf("feature %s must be between 0 and 1, got %v", key, v)
		}
	}
	return nil
}

// ForecastRequest forecasts the DTI of a province for a year
// Without features, the province's baseline features are used
type ForecastRequest struct {
	Province string        `json:"province"`
	Year     int           `json:"year"`
	Features FeatureVector `json:"features,omitempty"`
}

// SimulationRequest forecasts the DTI of a province after applying feature deltas
type SimulationRequest struct {
	Province     string             `json:"province"`
	Year         int                `json:"year"`
	Deltas       map[string]float64 `json:"deltas"`
	BaseFeatures FeatureVector      `json:"base_features,omitempty"`
}

// Forecast is a DTI prediction
type Forecast struct {
	Province       string             `json:"province"`
	Year           int                `json:"year"`
	ScenarioDeltas map[string]float64 `json:"scenario_deltas,omitempty"`
	PillarScores   map[string]float64 `json:"pillar_scores"`
	DTI            float64            `json:"DTI_prediction"`
	FeaturesUsed   FeatureVector      `json:"features_used"`
}

func (c *client) Metadata(ctx context.Context) (Metadata, error) {
	res, err := c.do(ctx, http.MethodGet, metadataPath, api.RequestOptions{})
	if err != nil {
		return nil, err
	}

	var metadata Metadata
	if err := decodeJSON(res, &metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

func (c *client) Forecast(ctx context.Context, req ForecastRequest) (Forecast, error) {
	if err := req.Features.Validate(); err != nil {
		return Forecast{}, err
	}
	return c.forecast(ctx, forecastPath, req)
}

func (c *client) Simulate(ctx context.Context, req SimulationRequest) (Forecast, error) {
	if err := req.BaseFeatures.Validate(); err != nil {
		return Forecast{}, err
	}
	if req.Deltas == nil {
		req.Deltas = map[string]float64{}
	}
	return c.forecast(ctx, simulatePath, req)
}

func (c *client) forecast(ctx context.Context, path string, payload interface{}) (Forecast, error) {
	res, err := c.doJSON(ctx, http.MethodPost, path, payload, api.RequestOptions{})
	if err != nil {
		return Forecast{}, err
	}

	var forecast Forecast
	if err := decodeJSON(res, &forecast); err != nil {
		return Forecast{}, err
	}
	return forecast, nil
}
