package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// queryInt reads an optional integer query parameter bounded to [lo, hi].
// ok is false when the parameter is present but malformed or out of range.
func queryInt(r *http.Request, name string, def, lo, hi int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, false
	}
	return v, true
}

// pathParam returns a decoded route parameter. chi matches against the
// escaped path when the request carries a RawPath, so only then is the
// value still percent-encoded.
func pathParam(r *http.Request, key string) (string, bool) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, v != ""
	}
	decoded, err := url.PathUnescape(v)
	if err != nil || decoded == "" {
		return "", false
	}
	return decoded, true
}
