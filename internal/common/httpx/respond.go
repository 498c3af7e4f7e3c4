package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteProblem writes a simplified RFC 7807 problem document.
func WriteProblem(w http.ResponseWriter, code int, typ, detail string) {
	WriteJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// AtoiDefault parses s, falling back to d when s is empty or malformed.
func AtoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return n
}

type errorLogger interface {
	Error(action string, err error, fields map[string]any)
}

// ServerError logs err and answers with a bare 500.
func ServerError(w http.ResponseWriter, r *http.Request, lg errorLogger, action string, err error) {
	lg.Error(action, err, map[string]any{"method": r.Method, "path": r.URL.Path})
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
