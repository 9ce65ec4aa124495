package data

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/skybi/tinsig/internal/mining"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type featureCollection struct {
	Type     string `json:"type"`
	Features []struct {
		Type     string `json:"type"`
		ID       string `json:"id"`
		Layer    string `json:"layer"`
		Geometry struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]any `json:"properties"`
	} `json:"features"`
}

func getJSON[T any](t *testing.T, handler http.Handler, target string) *T {
	t.Helper()
	rec := serve(handler, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	response := new(T)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), response))
	return response
}

func layers(collection *featureCollection) map[string]int {
	counts := map[string]int{}
	for _, feature := range collection.Features {
		counts[feature.Layer]++
	}
	return counts
}

func TestStatistics(t *testing.T) {
	handler := newTestService(t, testConfig(), nil)

	response := getJSON[envelope[mining.Statistics]](t, handler, "/v1/statistics")

	assert.Equal(t, "Statistics retrieved successfully", response.Message)
	assert.Equal(t, 5, response.Data.IllegalMiningCount)
	assert.Equal(t, 115.2, response.Data.ProductionTotal)
	assert.Equal(t, 6, response.Data.ActivePermitCount)
}

func TestMapData_AllLayers(t *testing.T) {
	handler := newTestService(t, testConfig(), nil)

	response := getJSON[envelope[featureCollection]](t, handler, "/v1/map-data")

	assert.Equal(t, "Map data retrieved successfully", response.Message)
	assert.Equal(t, "FeatureCollection", response.Data.Type)
	assert.Equal(t, map[string]int{"illegal-mining": 5, "iup": 6, "production": 5}, layers(&response.Data))

	first := response.Data.Features[0]
	assert.Equal(t, "Feature", first.Type)
	assert.Equal(t, "FIM/01/25/00001", first.ID)
	assert.Equal(t, "Point", first.Geometry.Type)
	assert.Equal(t, []float64{106.4837467, -3.028195}, first.Geometry.Coordinates)
	assert.Equal(t, "Amri", first.Properties["nama_pemilik"])
}

func TestMapData_SingleLayer(t *testing.T) {
	handler := newTestService(t, testConfig(), nil)

	response := getJSON[envelope[featureCollection]](t, handler, "/v1/map-data?layer=IUP")

	assert.Equal(t, map[string]int{"iup": 6}, layers(&response.Data))
}

func TestMapData_KabupatenOnlyNarrowsDeclaringLayers(t *testing.T) {
	handler := newTestService(t, testConfig(), nil)

	response := getJSON[envelope[featureCollection]](t, handler, "/v1/map-data?kabupaten=selatan")

	assert.Equal(t, map[string]int{"illegal-mining": 5, "iup": 6, "production": 1}, layers(&response.Data))
}

func TestMapData_RepeatedKabupatenMatchesAny(t *testing.T) {
	handler := newTestService(t, testConfig(), nil)

	response := getJSON[envelope[featureCollection]](t, handler, "/v1/map-data?kabupaten=selatan&kabupaten=Belitung")

	assert.Equal(t, map[string]int{"illegal-mining": 5, "iup": 6, "production": 1}, layers(&response.Data))
}

func TestMapData_UnknownLayer(t *testing.T) {
	handler := newTestService(t, testConfig(), nil)

	response := getJSON[envelope[featureCollection]](t, handler, "/v1/map-data?layer=roads")

	assert.NotNil(t, response.Data.Features)
	assert.Empty(t, response.Data.Features)
}

func TestHealth(t *testing.T) {
	handler := newTestService(t, testConfig(), nil)

	response := getJSON[healthResponse](t, handler, "/health")

	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "2025-01-20 08:30:00", response.Timestamp)
	assert.Nil(t, response.Datasets)
}

func TestDetailedHealth(t *testing.T) {
	handler := newTestService(t, testConfig(), nil)

	response := getJSON[healthResponse](t, handler, "/health/detailed")

	assert.Equal(t, map[string]int{"illegal-mining": 5, "iup": 6, "production": 5}, response.Datasets)
}
