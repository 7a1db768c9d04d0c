package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	articlesadapter "articlecards/internal/modules/articles/adapter/out"
	"articlecards/internal/modules/articles/dto"
	articlesin "articlecards/internal/modules/articles/port/in"
	"articlecards/internal/modules/articles/service"
	"articlecards/internal/modules/articles/usecase"
	apperrors "articlecards/internal/platform/errors"
)

func newUsecase(t *testing.T, payload string) articlesin.Usecase {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ARTICLES.json")
	if payload != "" {
		if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
			t.Fatalf("write payload: %v", err)
		}
	}
	markup, err := articlesadapter.LoadPageMarkup("")
	if err != nil {
		t.Fatalf("markup: %v", err)
	}
	page, err := articlesadapter.NewDOMPage(markup, nil)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	return usecase.NewInteractor(service.NewListService(articlesadapter.NewFileRecordSource(path), page, nil))
}

func TestRenderAndInteract(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, `{"articles": [{"id": "A1", "title": "T", "doi": "10.1/x"}, {"id": "B2", "title": "U", "pdf": "b2.pdf"}]}`)
	page, err := uc.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(page.Cards) != 2 || page.Cards[1].Title != "U" {
		t.Fatalf("unexpected page %+v", page)
	}

	out, err := uc.Click(context.Background(), dto.ClickInput{Card: 1, Part: "download"})
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if out.Page.OpenMenuIndex != 1 || out.Page.ExpandedIndex != 1 || !out.PropagationStopped {
		t.Fatalf("unexpected dispatch %+v", out)
	}
	var pdf dto.LinkOutput
	for _, link := range out.Page.Cards[1].Links {
		if link.Kind == "pdf" {
			pdf = link
		}
	}
	if !pdf.Enabled || pdf.URL != "https://pdf.rootnodedistillery.eu/b2.pdf" {
		t.Fatalf("unexpected pdf link %+v", pdf)
	}

	out, err = uc.KeyDown(context.Background(), dto.KeyInput{Key: "Escape"})
	if err != nil {
		t.Fatalf("keydown: %v", err)
	}
	if out.Page.OpenMenuIndex != -1 || out.Page.ExpandedIndex != 1 {
		t.Fatalf("escape should only close the menu: %+v", out.Page)
	}

	snap, err := uc.Snapshot(context.Background())
	if err != nil || snap.ExpandedIndex != 1 {
		t.Fatalf("unexpected snapshot %+v %v", snap, err)
	}
}

func TestRenderMissingFileShowsPlaceholder(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, "")
	page, err := uc.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(page.Cards) != 1 || !page.Cards[0].Placeholder {
		t.Fatalf("expected the placeholder card, got %+v", page.Cards)
	}
	articles, err := uc.Load(context.Background())
	if err != nil || len(articles) != 0 {
		t.Fatalf("load should yield no articles, got %+v %v", articles, err)
	}
}

func TestLoadNormalizesArticles(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, `{"articles": [{"id": " A1 ", "brief": "a\n  b", "doi": " 10.1/x "}]}`)
	articles, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := dto.ArticleOutput{ID: "A1", Title: "A1", Brief: "a b", DOI: "10.1/x"}
	if len(articles) != 1 || articles[0] != want {
		t.Fatalf("got %+v want %+v", articles, want)
	}
}

func TestClickRejectsBadInput(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, `{"articles": [{"id": "A1"}]}`)
	if _, err := uc.Render(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := uc.Click(context.Background(), dto.ClickInput{Card: 0, Part: "sidebar"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid part, got %v", err)
	}
	if _, err := uc.Click(context.Background(), dto.ClickInput{Card: 0, Part: "menu-item", Kind: "epub"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid kind, got %v", err)
	}
	if _, err := uc.Click(context.Background(), dto.ClickInput{Card: 3, Part: "title"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.KeyDown(context.Background(), dto.KeyInput{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid key, got %v", err)
	}
}

func TestResolveLink(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, "")
	link, err := uc.ResolveLink(context.Background(), dto.ResolveLinkInput{Kind: "ARK", Identifier: " 13030/tf5p30086k "})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if link.URL != "https://n2t.net/ark:/13030/tf5p30086k" || !link.Enabled {
		t.Fatalf("unexpected link %+v", link)
	}
	if _, err := uc.ResolveLink(context.Background(), dto.ResolveLinkInput{Kind: "doi"}); !errors.Is(err, apperrors.ErrLinkDisabled) {
		t.Fatalf("expected disabled link, got %v", err)
	}
	if _, err := uc.ResolveLink(context.Background(), dto.ResolveLinkInput{Kind: "isbn", Identifier: "1"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid kind, got %v", err)
	}
}
