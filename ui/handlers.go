package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gojoins/app"
	"gojoins/domain/core"
	"gojoins/domain/joins"
	"gojoins/domain/sample"
	"gojoins/internal/render"
)

// addSampleRequest accepts either a ready symbol sequence or numeric data to
// dichotomize.
type addSampleRequest struct {
	Name        string                   `json:"name,omitempty"`
	Symbols     []joins.Symbol           `json:"symbols,omitempty"`
	Data        []float64                `json:"data,omitempty"`
	Dichotomize sample.DichotomizeConfig `json:"dichotomize,omitempty"`
}

type importRequest struct {
	Path        string                   `json:"path"`
	Dichotomize sample.DichotomizeConfig `json:"dichotomize,omitempty"`
}

func (a *App) handleAddSample(w http.ResponseWriter, r *http.Request) {
	var req addSampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var smp *sample.Sample
	var err error
	switch {
	case len(req.Symbols) > 0:
		smp, err = a.service.AddSample(r.Context(), req.Name, req.Symbols, "api")
	case len(req.Data) > 0:
		smp, err = a.service.AddNumericSample(r.Context(), req.Name, req.Data, req.Dichotomize)
	default:
		writeError(w, http.StatusBadRequest, "either symbols or data is required")
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, smp)
}

func (a *App) handleListSamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.service.ListSamples())
}

func (a *App) handleReadSample(w http.ResponseWriter, r *http.Request) {
	smp, err := a.service.ReadSample(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, smp)
}

func (a *App) handleUnloadSample(w http.ResponseWriter, r *http.Request) {
	a.service.UnloadSample(chi.URLParam(r, "name"))
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) handleImportFile(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	imported, err := a.service.ImportFile(r.Context(), req.Path, req.Dichotomize)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, imported)
}

func (a *App) handleRunTest(w http.ResponseWriter, r *http.Request) {
	var req app.TestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := a.service.RunTest(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleSampleJoins(w http.ResponseWriter, r *http.Request) {
	req := app.TestRequest{
		SampleName: chi.URLParam(r, "name"),
		Config:     configFromQuery(r),
	}

	result, err := a.service.RunTest(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleSampleDump(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	req := app.TestRequest{SampleName: name, Config: configFromQuery(r)}

	result, err := a.service.RunTest(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(render.Text(name, result)))
}

func (a *App) handleSweep(w http.ResponseWriter, r *http.Request) {
	var cfg joins.TestConfig
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	result, err := a.sweeper.Run(r.Context(), cfg)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *App) handleSweepReport(w http.ResponseWriter, r *http.Request) {
	result, err := a.sweeper.Run(r.Context(), joins.TestConfig{})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(render.SweepHTML(result))
}

// configFromQuery reads tails, precision and correction overrides from the
// query string.
func configFromQuery(r *http.Request) joins.TestConfig {
	cfg := joins.TestConfig{}
	if tails, err := strconv.Atoi(r.URL.Query().Get("tails")); err == nil {
		cfg.Tails = tails
	}
	if precision, err := strconv.Atoi(r.URL.Query().Get("precision")); err == nil {
		cfg.Precision = precision
	}
	if r.URL.Query().Get("correction") == "false" {
		cfg.NoCorrection = true
	}
	return cfg
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case core.IsNotFoundError(err):
		writeError(w, http.StatusNotFound, err.Error())
	case core.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
