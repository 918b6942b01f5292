package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/manager"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const problemType = "https://themekit.dev/problems/"

// ThemeRequest switches the active theme.
type ThemeRequest struct {
	Name string `json:"name"`
}

// ThemeResponse is the consumer-facing state of a manager.
type ThemeResponse struct {
	CurrentTheme string            `json:"currentTheme"`
	ClassName    string            `json:"className"`
	Ready        bool              `json:"ready"`
	Theme        theme.Config      `json:"theme"`
	Variables    map[string]string `json:"variables"`
}

// ProblemDetail is an RFC 7807 error body.
type ProblemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /toggle", s.handleToggleForm)
	mux.HandleFunc("POST /use", s.handleUseForm)
	mux.HandleFunc("GET /theme.css", s.handleCSS)
	mux.HandleFunc("GET /api/themes", s.handleListThemes)
	mux.HandleFunc("GET /api/theme", s.handleGetTheme)
	mux.HandleFunc("PUT /api/theme", s.handleSetTheme)
	mux.HandleFunc("POST /api/theme/toggle", s.handleToggleTheme)
	mux.HandleFunc("PATCH /api/theme/config", s.handlePatchConfig)
	return withRequestLogging(s.log, mux)
}

func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	ss, ok := s.openOrFail(w, r)
	if !ok {
		return
	}
	defer ss.close()

	ss.flush()
	writeJSON(w, http.StatusOK, ss.mgr.Themes())
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	ss, ok := s.openOrFail(w, r)
	if !ok {
		return
	}
	defer ss.close()

	ss.flush()
	writeJSON(w, http.StatusOK, newThemeResponse(ss.mgr.Value()))
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeProblem(w, http.StatusBadRequest, "invalid-request", "name is required")
		return
	}

	ss, ok := s.openOrFail(w, r)
	if !ok {
		return
	}
	defer ss.close()

	err := ss.mgr.UpdateTheme(req.Name)
	ss.flush()
	if err != nil {
		s.writeManagerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newThemeResponse(ss.mgr.Value()))
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	ss, ok := s.openOrFail(w, r)
	if !ok {
		return
	}
	defer ss.close()

	err := ss.mgr.ToggleTheme()
	ss.flush()
	if err != nil {
		s.writeManagerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newThemeResponse(ss.mgr.Value()))
}

// handlePatchConfig applies a transient override. Overrides are not
// persisted, so the patch only shapes this response.
func (s *Server) handlePatchConfig(w http.ResponseWriter, r *http.Request) {
	var patch theme.Config
	if err := decodeJSONBody(w, r, &patch); err != nil {
		return
	}
	if patch.Colors != nil {
		for _, key := range theme.ColorKeys() {
			if v, _ := patch.Colors.Get(key); v != "" && !theme.ValidColor(v) {
				writeProblem(w, http.StatusUnprocessableEntity, "invalid-color",
					fmt.Sprintf("colors.%s: %q is not a valid color", key, v))
				return
			}
		}
	}

	ss, ok := s.openOrFail(w, r)
	if !ok {
		return
	}
	defer ss.close()

	err := ss.mgr.UpdateConfig(patch)
	ss.flush()
	if err != nil {
		s.writeManagerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newThemeResponse(ss.mgr.Value()))
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	ss, ok := s.openOrFail(w, r)
	if !ok {
		return
	}
	defer ss.close()

	ss.flush()
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, ss.doc.CSS(":root"))
}

func (s *Server) openOrFail(w http.ResponseWriter, r *http.Request) (*session, bool) {
	ss, err := s.open(w, r)
	if err != nil {
		loggerFrom(r.Context(), s.log).Error(err, "failed to open theme session")
		writeProblem(w, http.StatusServiceUnavailable, "session-unavailable", "theme state could not be restored")
		return nil, false
	}
	return ss, true
}

func (s *Server) writeManagerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, theme.ErrThemeNotFound):
		writeProblem(w, http.StatusNotFound, "theme-not-found", err.Error())
	case errors.Is(err, manager.ErrClosed):
		writeProblem(w, http.StatusServiceUnavailable, "session-unavailable", err.Error())
	default:
		loggerFrom(r.Context(), s.log).Error(err, "theme operation failed")
		writeProblem(w, http.StatusInternalServerError, "internal", "theme operation failed")
	}
}

func newThemeResponse(v manager.Value) ThemeResponse {
	return ThemeResponse{
		CurrentTheme: v.CurrentTheme,
		ClassName:    theme.ClassName(v.CurrentTheme),
		Ready:        v.Ready,
		Theme:        v.Theme,
		Variables:    theme.CSSVariables(v.Colors),
	}
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			writeProblem(w, http.StatusRequestEntityTooLarge, "body-too-large", "request body exceeds max size")
		case strings.Contains(err.Error(), "unknown field"):
			writeProblem(w, http.StatusBadRequest, "invalid-request", "request contains unknown fields")
		default:
			writeProblem(w, http.StatusBadRequest, "invalid-request", "request body must be valid JSON")
		}
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeProblem(w, http.StatusBadRequest, "invalid-request", "request body must contain exactly one JSON object")
		return errors.New("trailing data after JSON body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem writes an RFC 7807 problem response.
func writeProblem(w http.ResponseWriter, status int, kind, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ProblemDetail{
		Type:   problemType + kind,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
