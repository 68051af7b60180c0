package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gojoins/adapters/memory"
	"gojoins/app"
	"gojoins/domain/joins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store := memory.NewSampleStore()
	service := app.NewJoinsService(store, nil)
	sweeper := app.NewSweepService(store, 2)
	return NewApp(service, sweeper)
}

func doJSON(t *testing.T, a *App, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func TestAPI_SampleLifecycle(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, http.MethodPost, "/api/samples", addSampleRequest{
		Name:    "esp",
		Symbols: []joins.Symbol{"ban", "che", "che", "che", "che", "che", "che", "che"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, a, http.MethodGet, "/api/samples/esp", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, a, http.MethodGet, "/api/samples/esp/joins", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats joins.JoinStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Observed)
	assert.InDelta(t, 0.13057, stats.PValue, 1e-4)

	rec = doJSON(t, a, http.MethodDelete, "/api/samples/esp", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, a, http.MethodGet, "/api/samples/esp/joins", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_AddNumericSample(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, http.MethodPost, "/api/samples", map[string]interface{}{
		"name": "scores",
		"data": []float64{0.9, 0.1, 0.8, 0.2, 0.7, 0.3, 0.4, 0.45},
		"dichotomize": map[string]interface{}{
			"policy":    "threshold",
			"threshold": 0.5,
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, a, http.MethodGet, "/api/samples/scores/joins", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats joins.JoinStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.Observed)
	assert.InDelta(t, 0.4497, stats.PValue, 1e-4)
}

func TestAPI_RunWithExplicitParameters(t *testing.T) {
	a := newTestApp(t)

	observed := 90
	trials := 200
	prob := 0.5
	rec := doJSON(t, a, http.MethodPost, "/api/joins/run", app.TestRequest{
		Config: joins.TestConfig{
			Observed: &observed,
			Trials:   &trials,
			Prob:     &prob,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats joins.JoinStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.InDelta(t, 99.5, stats.Expected, 1e-9)
	assert.InDelta(t, 49.75, stats.Variance, 1e-9)
}

func TestAPI_ValidationErrorsReturn400(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, http.MethodPost, "/api/samples", addSampleRequest{
		Name:    "bad",
		Symbols: []joins.Symbol{"a", "b", "c"},
	})
	// Storing is fine; running the test is what rejects the sequence.
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, a, http.MethodGet, "/api/samples/bad/joins", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	prob := 1.5
	trials := 10
	observed := 2
	rec = doJSON(t, a, http.MethodPost, "/api/joins/run", app.TestRequest{
		Config: joins.TestConfig{Observed: &observed, Trials: &trials, Prob: &prob},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_SweepAndReport(t *testing.T) {
	a := newTestApp(t)

	rec := doJSON(t, a, http.MethodPost, "/api/samples", addSampleRequest{
		Name:    "esp",
		Symbols: []joins.Symbol{"1", "0", "1", "0", "1", "0", "0", "0"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, a, http.MethodPost, "/api/sweep", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sweep app.SweepResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sweep))
	assert.Equal(t, 1, sweep.Tested)

	rec = doJSON(t, a, http.MethodGet, "/api/sweep/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "esp")
}
