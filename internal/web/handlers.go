package web

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/JonMunkholm/csvtransform/internal/core"
	"github.com/JonMunkholm/csvtransform/internal/logging"
)

// handleTransform converts a CSV request body with the schema named in the
// URL and returns the records as JSON.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	if !isCSV(r.Header.Get("Content-Type")) {
		writeError(w, r, http.StatusUnsupportedMediaType, errUnsupportedMedia)
		return
	}
	if !acceptsJSON(r.Header.Get("Accept")) {
		writeError(w, r, http.StatusNotAcceptable, errNotAcceptable)
		return
	}

	schema, err := core.Lookup(chi.URLParam(r, "schema"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(s.cfg.Transform.MaxBodySize)))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, errBodyTooLarge)
			return
		}
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	runID := uuid.NewString()
	ctx := core.ContextWithRunID(r.Context(), runID)
	w.Header().Set("X-Run-ID", runID)

	records, err := schema.TransformBytes(ctx, body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	logging.WithFields(ctx, "run_id", runID).Info("transformed",
		"schema", schema.Name,
		"records", len(records),
		"bytes", len(body),
	)
	writeJSON(w, http.StatusOK, records)
}

// handleListSchemas returns the declarations of all registered schemas.
func (s *Server) handleListSchemas(w http.ResponseWriter, r *http.Request) {
	schemas := core.All()
	infos := make([]core.SchemaInfo, len(schemas))
	for i, sc := range schemas {
		infos[i] = sc.Describe()
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"schemas": core.SchemaCount(),
	})
}

// isCSV reports whether a Content-Type header names text/csv.
// Parameters such as charset are ignored.
func isCSV(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "text/csv"
}

// acceptsJSON reports whether an Accept header allows a JSON response.
// A missing header accepts anything.
func acceptsJSON(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return true
	}
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, _ := strings.Cut(part, ";")
		switch strings.ToLower(strings.TrimSpace(mediaType)) {
		case "application/json", "application/*", "*/*":
			return true
		}
	}
	return false
}
