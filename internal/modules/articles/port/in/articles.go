package in

import (
	"context"

	"articlecards/internal/modules/articles/dto"
)

type Usecase interface {
	Load(ctx context.Context) ([]dto.ArticleOutput, error)
	Render(ctx context.Context) (dto.PageOutput, error)
	Click(ctx context.Context, input dto.ClickInput) (dto.DispatchOutput, error)
	KeyDown(ctx context.Context, input dto.KeyInput) (dto.DispatchOutput, error)
	Snapshot(ctx context.Context) (dto.PageOutput, error)
	HTML(ctx context.Context) (string, error)
	ResolveLink(ctx context.Context, input dto.ResolveLinkInput) (dto.LinkOutput, error)
}
