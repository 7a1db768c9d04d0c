package out

import (
	"context"

	"articlecards/internal/modules/articles/domain"
)

type RecordSource interface {
	// Location is the resolved URL or path, used in diagnostics.
	Location() string
	Fetch(ctx context.Context) ([]domain.Record, error)
}

// StatusReporter is implemented by fetch errors that carry the HTTP status of
// the response.
type StatusReporter interface {
	error
	HTTPStatus() int
}

// Page is the rendered document: it owns the cards, the selection state and
// the delegated listeners driving it.
type Page interface {
	// Render replaces the list content and returns the number of cards built.
	Render(records []domain.Record) int
	Dispatch(input domain.Input) (domain.DispatchResult, error)
	Snapshot() domain.PageState
	HTML() (string, error)
}
