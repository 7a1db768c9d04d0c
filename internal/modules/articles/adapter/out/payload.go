package out

import (
	"encoding/json"
	"fmt"
	"io"

	"articlecards/internal/modules/articles/domain"
	apperrors "articlecards/internal/platform/errors"
)

// decodeRecords reads {"articles": [...]}. Entries that are not objects are
// skipped and non-string field values count as absent.
func decodeRecords(r io.Reader) ([]domain.Record, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", apperrors.ErrDataSource, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", apperrors.ErrDataSource)
	}
	rawArticles, ok := doc["articles"]
	if !ok {
		return nil, fmt.Errorf("%w: payload has no articles field", apperrors.ErrDataSource)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(rawArticles, &entries); err != nil || entries == nil {
		return nil, fmt.Errorf("%w: articles is not an array", apperrors.ErrDataSource)
	}

	records := make([]domain.Record, 0, len(entries))
	for _, entry := range entries {
		var fields map[string]any
		if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
			continue
		}
		records = append(records, domain.Record{
			ID:       asString(fields["id"]),
			Title:    asString(fields["title"]),
			Brief:    asString(fields["brief"]),
			Abstract: asString(fields["abstract"]),
			PDF:      asString(fields["pdf"]),
			DOI:      asString(fields["doi"]),
			ARK:      asString(fields["ark"]),
			Comment:  asString(fields["comment"]),
		})
	}
	return records, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
