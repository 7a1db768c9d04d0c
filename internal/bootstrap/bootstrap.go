package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	articlesinadapter "articlecards/internal/modules/articles/adapter/in"
	articlesoutadapter "articlecards/internal/modules/articles/adapter/out"
	articlesservice "articlecards/internal/modules/articles/service"
	articlesusecase "articlecards/internal/modules/articles/usecase"
	"articlecards/internal/platform/config"
	uiapp "articlecards/internal/ui/app"
)

type App struct {
	// Location is the resolved data URL or path.
	Location    string
	ArticlesCLI articlesinadapter.CLIHandler
	ArticlesTUI articlesinadapter.TUIHandler
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	markup, err := articlesoutadapter.LoadPageMarkup(cfg.PagePath)
	if err != nil {
		return nil, err
	}
	page, err := articlesoutadapter.NewDOMPage(markup, logger.Named("page"))
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	location, err := articlesoutadapter.ResolveDataLocation(cfg.BaseLocation, cfg.DataPath)
	if err != nil {
		return nil, err
	}
	source := articlesoutadapter.NewRecordSource(location, cfg.Timeout)

	articlesUC := articlesusecase.NewInteractor(articlesservice.NewListService(source, page, logger))
	return &App{
		Location:    location,
		ArticlesCLI: articlesinadapter.NewCLIHandler(articlesUC),
		ArticlesTUI: articlesinadapter.NewTUIHandler(articlesUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Location, app.ArticlesTUI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
