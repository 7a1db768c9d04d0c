package out

import (
	"errors"
	"strings"
	"testing"

	"articlecards/internal/modules/articles/domain"
	apperrors "articlecards/internal/platform/errors"
)

func TestDecodeRecordsSkipsNonObjectsAndNonStrings(t *testing.T) {
	t.Parallel()
	payload := `{"articles": [
		{"id": "A1", "title": "T", "doi": "10.1/x", "pdf": 12},
		"stray",
		null,
		{"id": "B2", "comment": "t/4", "ark": null, "extra": true}
	]}`
	records, err := decodeRecords(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []domain.Record{
		{ID: "A1", Title: "T", DOI: "10.1/x"},
		{ID: "B2", Comment: "t/4"},
	}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d: %+v", len(want), len(records), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("record %d: got %+v want %+v", i, records[i], want[i])
		}
	}
}

func TestDecodeRecordsEmptyArray(t *testing.T) {
	t.Parallel()
	records, err := decodeRecords(strings.NewReader(`{"articles": []}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestDecodeRecordsRejectsMalformedPayloads(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"not json":          `{"articles": [`,
		"top-level array":   `[{"id": "A1"}]`,
		"null":              `null`,
		"missing articles":  `{"items": []}`,
		"articles object":   `{"articles": {"id": "A1"}}`,
		"articles null":     `{"articles": null}`,
		"articles a string": `{"articles": "A1"}`,
	}
	for name, payload := range cases {
		name, payload := name, payload
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, err := decodeRecords(strings.NewReader(payload)); !errors.Is(err, apperrors.ErrDataSource) {
				t.Fatalf("expected data source error, got %v", err)
			}
		})
	}
}
