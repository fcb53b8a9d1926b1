package monitor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/the-maldridge/brwatch/pkg/types"
)

// HTTPEntry provides the mountpoint for this service into the shared
// webserver routing tree.  Handlers serialize against the refresh
// loop via Mu.
func (m *Monitor) HTTPEntry() chi.Router {
	r := chi.NewRouter()

	r.Get("/stages", m.httpDumpStages)
	r.Get("/stages/{pkg}", m.httpDumpStage)
	r.Get("/summary", m.httpDumpSummary)

	r.Post("/refresh", m.httpRefresh)

	return r
}

func (m *Monitor) httpDumpStages(w http.ResponseWriter, r *http.Request) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	enc := json.NewEncoder(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc.Encode(m.stages)
}

func (m *Monitor) httpDumpStage(w http.ResponseWriter, r *http.Request) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	b, ok := m.builds[chi.URLParam(r, "pkg")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	out := struct {
		Name  string
		Stage types.Stage
	}{
		Name:  b.Info.Name,
		Stage: m.Stage(b),
	}

	enc := json.NewEncoder(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc.Encode(out)
}

func (m *Monitor) httpDumpSummary(w http.ResponseWriter, r *http.Request) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	out := struct {
		Total     int
		Built     int
		Installed int
	}{
		Total:     len(m.builds),
		Built:     m.BuiltCount(),
		Installed: m.InstalledCount(),
	}

	enc := json.NewEncoder(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc.Encode(out)
}

func (m *Monitor) httpRefresh(w http.ResponseWriter, r *http.Request) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if err := m.Refresh(); err != nil {
		jsonError(w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func jsonError(w http.ResponseWriter, err error, code int) {
	enc := json.NewEncoder(w)
	w.WriteHeader(code)
	out := struct {
		Error string
	}{
		Error: err.Error(),
	}
	enc.Encode(out)
}
