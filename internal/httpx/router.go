package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AngelCh415/adcompare/internal/extract"
	"github.com/AngelCh415/adcompare/internal/ingest"
	"github.com/AngelCh415/adcompare/internal/metrics"
	"github.com/AngelCh415/adcompare/internal/models"
	"github.com/AngelCh415/adcompare/internal/utils"
)

type extractReq struct {
	Payload any          `json:"payload"`
	Hints   models.Hints `json:"hints"`
}

type compareReq struct {
	Entities []metrics.Entity `json:"entities"`
	Metric   string           `json:"metric"`
}

type projectReq struct {
	Records []*models.Record `json:"records"`
	Metric  string           `json:"metric"`
}

func NewRouter(log *slog.Logger, mSvc *metrics.Service, inst *utils.Instruments, maxBody int64) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(inst.Middleware)

	decode := func(w http.ResponseWriter, r *http.Request, dst any) bool {
		repaired, err := ingest.Decode(r.Body, maxBody, dst)
		if repaired {
			inst.Repaired()
			log.Warn("repaired request body", slog.String("rid", utils.RID(r.Context())))
		}
		if err != nil {
			writeErr(w, err)
			return false
		}
		return true
	}

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Method(http.MethodGet, "/metrics", inst.Handler())

	mux.Post("/extract/{platform}", func(w http.ResponseWriter, r *http.Request) {
		var req extractReq
		if !decode(w, r, &req) {
			return
		}
		rec, err := mSvc.Extract(chi.URLParam(r, "platform"), req.Payload, req.Hints)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]any{"record": rec})
	})

	mux.Post("/compare", func(w http.ResponseWriter, r *http.Request) {
		var req compareReq
		if !decode(w, r, &req) {
			return
		}
		res, err := mSvc.Compare(req.Entities, req.Metric)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, res)
	})

	mux.Post("/project", func(w http.ResponseWriter, r *http.Request) {
		var req projectReq
		if !decode(w, r, &req) {
			return
		}
		pts, err := mSvc.Project(req.Records, req.Metric)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]any{"points": pts})
	})

	mux.Get("/catalog/metrics", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"metrics":   mSvc.Catalog(),
			"platforms": mSvc.Platforms(),
			"colors":    mSvc.Colors(),
		})
	})

	return mux
}

func writeErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ingest.ErrBodyTooLarge):
		code = http.StatusRequestEntityTooLarge
	case errors.Is(err, ingest.ErrEmptyBody),
		errors.Is(err, ingest.ErrMalformed),
		errors.Is(err, extract.ErrUnknownPlatform),
		errors.Is(err, models.ErrUnknownMetric):
		code = http.StatusBadRequest
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
