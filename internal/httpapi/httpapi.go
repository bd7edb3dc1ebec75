// Package httpapi exposes the documentation pipeline over HTTP. It mirrors
// the MCP tool surface for clients that prefer plain REST: paste code,
// upload a file, or upload a batch of files.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dshills/pydocgen-mcp/internal/engine"
	"github.com/dshills/pydocgen-mcp/internal/generator"
	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// maxUploadBytes caps a single request body. Python sources larger than
// this are rejected before parsing.
const maxUploadBytes = 10 << 20

// Server handles REST requests against a shared generator
type Server struct {
	gen    *generator.Generator
	logger *log.Logger
}

// NewServer creates an HTTP API server. A nil logger discards output.
func NewServer(gen *generator.Generator, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{gen: gen, logger: logger}
}

// Router builds the chi router with all routes mounted
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleInfo)
	r.Post("/document", s.handleDocument)
	r.Post("/upload", s.handleUpload)
	r.Post("/batch", s.handleBatch)

	return r
}

// handleInfo returns API metadata and the endpoint listing
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        "pydocgen",
		"description": "Generate and insert docstrings into Python source",
		"endpoints": map[string]string{
			"document": "POST /document - JSON body {code, style}",
			"upload":   "POST /upload - multipart single .py file",
			"batch":    "POST /batch - multipart multiple .py files",
		},
	})
}

type documentRequest struct {
	Code  string `json:"code"`
	Style string `json:"style"`
}

// handleDocument processes pasted source from a JSON body
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	output, inserted, err := s.document(r, req.Code, req.Style)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"generated_code": output,
		"inserted":       inserted,
	})
}

// handleUpload processes a single uploaded Python file
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	name, content, err := readUpload(r, "file")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	output, inserted, err := s.document(r, string(content), r.FormValue("style"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "success",
		"filename":       name,
		"original_code":  string(content),
		"generated_code": output,
		"inserted":       inserted,
	})
}

// handleBatch processes multiple uploaded files. Per-file failures become
// error entries in the response; the request itself still succeeds.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body: "+err.Error())
		return
	}
	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "at least one file is required")
		return
	}

	style := r.FormValue("style")
	processed := 0
	results := make([]map[string]interface{}, 0, len(headers))
	for _, hdr := range headers {
		if !strings.HasSuffix(hdr.Filename, ".py") {
			results = append(results, map[string]interface{}{
				"filename": hdr.Filename,
				"status":   "skipped",
				"message":  "only .py files are supported",
			})
			continue
		}

		f, err := hdr.Open()
		if err != nil {
			results = append(results, fileError(hdr.Filename, err))
			continue
		}
		content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		_ = f.Close()
		if err != nil {
			results = append(results, fileError(hdr.Filename, err))
			continue
		}

		output, inserted, err := s.document(r, string(content), style)
		if err != nil {
			s.logger.Warn("batch file failed", "filename", hdr.Filename, "err", err)
			results = append(results, fileError(hdr.Filename, err))
			continue
		}

		processed++
		results = append(results, map[string]interface{}{
			"filename":       hdr.Filename,
			"status":         "success",
			"generated_code": output,
			"inserted":       inserted,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "success",
		"total_files": len(headers),
		"processed":   processed,
		"results":     results,
	})
}

// document runs the single-source pipeline with the requested style
func (s *Server) document(r *http.Request, code, style string) (string, int, error) {
	eng := engine.New(s.gen, engine.WithStyle(types.DocStyle(style)))
	return eng.DocumentSource(r.Context(), code)
}

// readUpload extracts one uploaded file from a multipart form
func readUpload(r *http.Request, field string) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, errors.New("invalid multipart body: " + err.Error())
	}
	f, hdr, err := r.FormFile(field)
	if err != nil {
		return "", nil, errors.New(field + " is required")
	}
	defer func() { _ = f.Close() }()

	if !strings.HasSuffix(hdr.Filename, ".py") {
		return "", nil, errors.New("only .py files are supported")
	}
	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return "", nil, err
	}
	return hdr.Filename, content, nil
}

// fileError builds a per-file error entry for batch responses
func fileError(name string, err error) map[string]interface{} {
	return map[string]interface{}{
		"filename": name,
		"status":   "error",
		"error":    err.Error(),
	}
}

// statusFor maps pipeline errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrMalformedSource), errors.Is(err, types.ErrEmptySource):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"status": "error",
		"detail": msg,
	})
}
