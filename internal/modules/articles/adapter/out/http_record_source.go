package out

import (
	"context"
	"fmt"
	"net/http"

	"articlecards/internal/modules/articles/domain"
	articlesout "articlecards/internal/modules/articles/port/out"
	apperrors "articlecards/internal/platform/errors"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

func (e *StatusError) HTTPStatus() int {
	return e.StatusCode
}

func (e *StatusError) Unwrap() error {
	return apperrors.ErrDataSource
}

type HTTPRecordSource struct {
	client *http.Client
	url    string
}

func NewHTTPRecordSource(url string, client *http.Client) articlesout.RecordSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRecordSource{client: client, url: url}
}

func (s *HTTPRecordSource) Location() string {
	return s.url
}

func (s *HTTPRecordSource) Fetch(ctx context.Context) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", apperrors.ErrDataSource, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDataSource, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return decodeRecords(resp.Body)
}
