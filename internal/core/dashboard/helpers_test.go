package dashboard_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// 2024-06-01 00:00:00 UTC
	baseEpoch    = int64(1717200000)
	sunriseEpoch = baseEpoch + 13500
	sunsetEpoch  = baseEpoch + 71100
)

// forecastJSON builds an OpenWeatherMap-shaped payload with n 3-hourly samples.
// Sample i has temp 12.5+i; sample 0 carries currentDescription.
func forecastJSON(t *testing.T, city string, n int, currentDescription string) json.RawMessage {
	t.Helper()

	list := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		description := "scattered clouds"
		if i == 0 {
			description = currentDescription
		}
		temp := 12.5 + float64(i)
		list = append(list, map[string]interface{}{
			"dt": baseEpoch + int64(i)*3*3600,
			"main": map[string]interface{}{
				"temp":     temp,
				"temp_min": temp - 1,
				"temp_max": temp + 1,
				"humidity": 70,
			},
			"weather": []map[string]interface{}{{"description": description}},
			"wind":    map[string]interface{}{"speed": 4.1},
		})
	}

	payload, err := json.Marshal(map[string]interface{}{
		"city": map[string]interface{}{
			"name":    city,
			"sunrise": sunriseEpoch,
			"sunset":  sunsetEpoch,
		},
		"list": list,
	})
	require.NoError(t, err)
	return payload
}

// newsJSON builds a NewsAPI-shaped payload with n articles titled "<prefix> 1".."<prefix> n"
func newsJSON(t *testing.T, prefix string, n int) json.RawMessage {
	t.Helper()

	articles := make([]map[string]interface{}, 0, n)
	for i := 1; i <= n; i++ {
		articles = append(articles, map[string]interface{}{
			"title":       fmt.Sprintf("%s %d", prefix, i),
			"description": fmt.Sprintf("story %d", i),
			"url":         fmt.Sprintf("https://news.example.com/%d", i),
		})
	}

	payload, err := json.Marshal(map[string]interface{}{
		"status":       "ok",
		"totalResults": n,
		"articles":     articles,
	})
	require.NoError(t, err)
	return payload
}
