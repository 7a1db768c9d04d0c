package usecase

import (
	"context"
	"fmt"
	"strings"

	"articlecards/internal/modules/articles/domain"
	"articlecards/internal/modules/articles/dto"
	articlesin "articlecards/internal/modules/articles/port/in"
	"articlecards/internal/modules/articles/service"
	apperrors "articlecards/internal/platform/errors"
)

type Interactor struct {
	svc *service.ListService
}

func NewInteractor(svc *service.ListService) articlesin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) ([]dto.ArticleOutput, error) {
	records := i.svc.Load(ctx)
	out := make([]dto.ArticleOutput, 0, len(records))
	for _, record := range records {
		out = append(out, dto.ArticleOutput{
			ID:       strings.TrimSpace(record.ID),
			Title:    record.DisplayTitle(),
			Brief:    domain.NormalizeText(record.Brief),
			Abstract: domain.NormalizeText(record.Abstract),
			PDF:      record.Identifier(domain.LinkPDF),
			DOI:      record.Identifier(domain.LinkDOI),
			ARK:      record.Identifier(domain.LinkARK),
			Comment:  record.Identifier(domain.LinkComment),
		})
	}
	return out, nil
}

func (i *Interactor) Render(ctx context.Context) (dto.PageOutput, error) {
	return toPageOutput(i.svc.RenderPage(ctx)), nil
}

func (i *Interactor) Click(ctx context.Context, input dto.ClickInput) (dto.DispatchOutput, error) {
	part, err := domain.ParsePart(input.Part)
	if err != nil {
		return dto.DispatchOutput{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}
	kind := domain.LinkKind(strings.ToLower(strings.TrimSpace(input.Kind)))
	if kind != "" {
		if err := kind.Validate(); err != nil {
			return dto.DispatchOutput{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
		}
	}
	result, err := i.svc.Dispatch(ctx, domain.Click(domain.Locator{Card: input.Card, Part: part, Kind: kind}))
	if err != nil {
		return dto.DispatchOutput{}, err
	}
	return toDispatchOutput(result), nil
}

func (i *Interactor) KeyDown(ctx context.Context, input dto.KeyInput) (dto.DispatchOutput, error) {
	if input.Key == "" {
		return dto.DispatchOutput{}, fmt.Errorf("%w: key is required", apperrors.ErrInvalidInput)
	}
	result, err := i.svc.Dispatch(ctx, domain.KeyDown(input.Key))
	if err != nil {
		return dto.DispatchOutput{}, err
	}
	return toDispatchOutput(result), nil
}

func (i *Interactor) Snapshot(_ context.Context) (dto.PageOutput, error) {
	return toPageOutput(i.svc.Snapshot()), nil
}

func (i *Interactor) HTML(_ context.Context) (string, error) {
	return i.svc.HTML()
}

func (i *Interactor) ResolveLink(_ context.Context, input dto.ResolveLinkInput) (dto.LinkOutput, error) {
	kind := domain.LinkKind(strings.ToLower(strings.TrimSpace(input.Kind)))
	if err := kind.Validate(); err != nil {
		return dto.LinkOutput{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}
	url, ok := domain.ResolveLinkURL(kind, input.Identifier)
	if !ok {
		return dto.LinkOutput{Kind: string(kind)}, fmt.Errorf("%w: %s identifier is empty", apperrors.ErrLinkDisabled, kind)
	}
	return dto.LinkOutput{Kind: string(kind), URL: url, Enabled: true}, nil
}

func toDispatchOutput(result domain.DispatchResult) dto.DispatchOutput {
	return dto.DispatchOutput{
		DefaultPrevented:   result.DefaultPrevented,
		PropagationStopped: result.PropagationStopped,
		Page:               toPageOutput(result.State),
	}
}

func toPageOutput(state domain.PageState) dto.PageOutput {
	out := dto.PageOutput{
		Cards:         make([]dto.CardOutput, 0, len(state.Cards)),
		ExpandedIndex: state.ExpandedIndex,
		OpenMenuIndex: state.OpenMenuIndex,
	}
	for _, card := range state.Cards {
		co := dto.CardOutput{
			Index:          card.Index,
			ID:             card.ID,
			Title:          card.Title,
			Brief:          card.Brief,
			Abstract:       card.Abstract,
			Anchor:         card.Anchor,
			Placeholder:    card.Placeholder,
			Expanded:       card.Expanded,
			HasMenu:        card.HasMenu,
			MenuOpen:       card.MenuOpen,
			ButtonExpanded: card.ButtonExpanded,
		}
		for _, link := range card.Links {
			co.Links = append(co.Links, toLinkOutput(link))
		}
		if card.Comment != nil {
			link := toLinkOutput(*card.Comment)
			co.Comment = &link
		}
		out.Cards = append(out.Cards, co)
	}
	return out
}

func toLinkOutput(link domain.LinkState) dto.LinkOutput {
	return dto.LinkOutput{Kind: string(link.Kind), URL: link.URL, Enabled: link.Enabled}
}
