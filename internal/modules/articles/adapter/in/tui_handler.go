package in

import (
	"context"

	"articlecards/internal/modules/articles/dto"
	articlesin "articlecards/internal/modules/articles/port/in"
)

// TUIHandler drives the rendered page from the terminal UI.
type TUIHandler struct {
	usecase articlesin.Usecase
}

func NewTUIHandler(usecase articlesin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Load(ctx context.Context) (dto.PageOutput, error) {
	return h.usecase.Render(ctx)
}

func (h TUIHandler) Snapshot(ctx context.Context) (dto.PageOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h TUIHandler) ClickTitle(ctx context.Context, card int) (dto.DispatchOutput, error) {
	return h.usecase.Click(ctx, dto.ClickInput{Card: card, Part: "title"})
}

func (h TUIHandler) ClickDownload(ctx context.Context, card int) (dto.DispatchOutput, error) {
	return h.usecase.Click(ctx, dto.ClickInput{Card: card, Part: "download"})
}

func (h TUIHandler) ClickMenuItem(ctx context.Context, card int, kind string) (dto.DispatchOutput, error) {
	return h.usecase.Click(ctx, dto.ClickInput{Card: card, Part: "menu-item", Kind: kind})
}

func (h TUIHandler) ClickOutside(ctx context.Context) (dto.DispatchOutput, error) {
	return h.usecase.Click(ctx, dto.ClickInput{Part: "outside"})
}

func (h TUIHandler) Escape(ctx context.Context) (dto.DispatchOutput, error) {
	return h.usecase.KeyDown(ctx, dto.KeyInput{Key: "Escape"})
}
