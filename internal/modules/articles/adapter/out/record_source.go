package out

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	articlesout "articlecards/internal/modules/articles/port/out"
	apperrors "articlecards/internal/platform/errors"
)

// ResolveDataLocation resolves data against the page location base the way a
// browser resolves a relative URL against the page address. Local bases are
// directories, or files whose directory is used.
func ResolveDataLocation(base, data string) (string, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return "", fmt.Errorf("%w: data path is required", apperrors.ErrInvalidInput)
	}
	if ref, err := url.Parse(data); err == nil && isRemoteScheme(ref.Scheme) {
		return ref.String(), nil
	}

	base = strings.TrimSpace(base)
	if baseURL, err := url.Parse(base); err == nil && isRemoteScheme(baseURL.Scheme) {
		ref, err := url.Parse(data)
		if err != nil {
			return "", fmt.Errorf("%w: parse data path %q: %w", apperrors.ErrInvalidInput, data, err)
		}
		return baseURL.ResolveReference(ref).String(), nil
	}

	if filepath.IsAbs(data) {
		return data, nil
	}
	if base == "" {
		base = "."
	}
	if info, err := os.Stat(base); err == nil && !info.IsDir() {
		base = filepath.Dir(base)
	}
	return filepath.Join(base, data), nil
}

// NewRecordSource picks the adapter for a resolved location.
func NewRecordSource(location string, timeout time.Duration) articlesout.RecordSource {
	if u, err := url.Parse(location); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return NewHTTPRecordSource(location, &http.Client{Timeout: timeout})
		case "file":
			return NewFileRecordSource(u.Path)
		}
	}
	return NewFileRecordSource(location)
}

func isRemoteScheme(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "http", "https", "file":
		return true
	default:
		return false
	}
}
