package dti

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/terminal"
)

const (
	headerPillar = "Pillar"
	headerScore  = "Score"
)

func forecastLogs(forecast hub.Forecast) []terminal.Log {
	pillars := make([]string, 0, len(forecast.PillarScores))
	for pillar := range forecast.PillarScores {
		pillars = append(pillars, pillar)
	}
	sort.Strings(pillars)

	rows := make([]map[string]interface{}, 0, len(pillars))
	for _, pillar := range pillars {
		rows = append(rows, map[string]interface{}{
			headerPillar: pillar,
			headerScore:  formatScore(forecast.PillarScores[pillar]),
		})
	}

	return []terminal.Log{
		terminal.NewTextLog("DTI forecast for %s in %d: %s", forecast.Province, forecast.Year, formatScore(forecast.DTI)),
		terminal.NewTableLog("Pillar scores", []string{headerPillar, headerScore}, rows...),
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}

func deltaRows(deltas map[string]float64) []interface{} {
	keys := hub.FeatureVector(deltas).Keys()
	rows := make([]interface{}, len(keys))
	for i, key := range keys {
		rows[i] = fmt.Sprintf("%s %+g", key, deltas[key])
	}
	return rows
}
