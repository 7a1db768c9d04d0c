package in

import (
	"context"

	"articlecards/internal/modules/articles/dto"
	articlesin "articlecards/internal/modules/articles/port/in"
)

type CLIHandler struct {
	usecase articlesin.Usecase
}

func NewCLIHandler(usecase articlesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ArticleOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Render(ctx context.Context) (dto.PageOutput, error) {
	return h.usecase.Render(ctx)
}

func (h CLIHandler) RenderHTML(ctx context.Context) (string, error) {
	if _, err := h.usecase.Render(ctx); err != nil {
		return "", err
	}
	return h.usecase.HTML(ctx)
}

func (h CLIHandler) HTML(ctx context.Context) (string, error) {
	return h.usecase.HTML(ctx)
}

func (h CLIHandler) Click(ctx context.Context, card int, part, kind string) (dto.DispatchOutput, error) {
	return h.usecase.Click(ctx, dto.ClickInput{Card: card, Part: part, Kind: kind})
}

func (h CLIHandler) KeyDown(ctx context.Context, key string) (dto.DispatchOutput, error) {
	return h.usecase.KeyDown(ctx, dto.KeyInput{Key: key})
}

func (h CLIHandler) ResolveLink(ctx context.Context, kind, identifier string) (dto.LinkOutput, error) {
	return h.usecase.ResolveLink(ctx, dto.ResolveLinkInput{Kind: kind, Identifier: identifier})
}
