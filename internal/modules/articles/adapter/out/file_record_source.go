package out

import (
	"context"
	"fmt"
	"os"

	"articlecards/internal/modules/articles/domain"
	articlesout "articlecards/internal/modules/articles/port/out"
	apperrors "articlecards/internal/platform/errors"
)

type FileRecordSource struct {
	path string
}

func NewFileRecordSource(path string) articlesout.RecordSource {
	return &FileRecordSource{path: path}
}

func (s *FileRecordSource) Location() string {
	return s.path
}

func (s *FileRecordSource) Fetch(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDataSource, err)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDataSource, err)
	}
	defer f.Close()
	return decodeRecords(f)
}
