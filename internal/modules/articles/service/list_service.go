package service

import (
	"context"
	"errors"

	hclog "github.com/hashicorp/go-hclog"

	"articlecards/internal/modules/articles/domain"
	articlesout "articlecards/internal/modules/articles/port/out"
)

// ListService loads the records once and renders them into the page.
type ListService struct {
	source articlesout.RecordSource
	page   articlesout.Page
	logger hclog.Logger
}

func NewListService(source articlesout.RecordSource, page articlesout.Page, logger hclog.Logger) *ListService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ListService{source: source, page: page, logger: logger.Named("articles")}
}

// Load never fails. Any fetch, status or decode problem is logged with the
// resolved location and yields an empty record list.
func (s *ListService) Load(ctx context.Context) []domain.Record {
	records, err := s.source.Fetch(ctx)
	if err != nil {
		args := []any{"url", s.source.Location(), "error", err}
		var status articlesout.StatusReporter
		if errors.As(err, &status) {
			args = append(args, "status", status.HTTPStatus())
		}
		s.logger.Warn("failed to load articles", args...)
		return []domain.Record{}
	}
	s.logger.Debug("loaded articles", "url", s.source.Location(), "count", len(records))
	return records
}

// RenderPage loads and renders, returning the resulting page state.
func (s *ListService) RenderPage(ctx context.Context) domain.PageState {
	records := s.Load(ctx)
	built := s.page.Render(records)
	s.logger.Debug("rendered cards", "records", len(records), "cards", built)
	return s.page.Snapshot()
}

func (s *ListService) Dispatch(ctx context.Context, input domain.Input) (domain.DispatchResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.DispatchResult{}, err
	}
	return s.page.Dispatch(input)
}

func (s *ListService) Snapshot() domain.PageState {
	return s.page.Snapshot()
}

func (s *ListService) HTML() (string, error) {
	return s.page.HTML()
}
