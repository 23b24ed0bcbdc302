package cmd

import (
	"io"
	"time"

	"go.uber.org/dig"

	"github.com/ajxudir/vogue/pkg/config"
	"github.com/ajxudir/vogue/pkg/display/colors"
	"github.com/ajxudir/vogue/pkg/feed"
	"github.com/ajxudir/vogue/pkg/policy"
	"github.com/ajxudir/vogue/pkg/suppression"
)

// Settings are the resolved command-line inputs a run is built from.
type Settings struct {
	ConfigPath         string
	ReportPath         string
	ExcludePreReleases bool
	NoColor            bool
	In                 io.Reader
	Out                io.Writer
	Now                func() time.Time
}

// App bundles the collaborators of the report and suppress commands.
type App struct {
	Settings  Settings
	Store     *config.Store
	Loader    *feed.Loader
	Evaluator *policy.Evaluator
	Workflow  *suppression.Workflow
	Palette   colors.Palette
}

// NewApp creates an App from its collaborators.
func NewApp(s Settings, store *config.Store, loader *feed.Loader, evaluator *policy.Evaluator,
	workflow *suppression.Workflow, palette colors.Palette) *App {
	return &App{
		Settings:  s,
		Store:     store,
		Loader:    loader,
		Evaluator: evaluator,
		Workflow:  workflow,
		Palette:   palette,
	}
}

// Now returns the current time from the configured clock.
func (a *App) Now() time.Time {
	return a.Settings.Now()
}

// RegisterProviders registers every App collaborator with the container.
func RegisterProviders(container *dig.Container, s Settings) error {
	if s.Now == nil {
		s.Now = time.Now
	}

	providers := []any{
		func() Settings { return s },
		func(settings Settings) *config.Store { return config.NewStore(settings.ConfigPath) },
		func(settings Settings) *feed.Loader {
			loader := feed.NewLoader(settings.ReportPath)
			loader.ExcludePreReleases = settings.ExcludePreReleases
			return loader
		},
		func(settings Settings) *policy.Evaluator { return policy.NewEvaluator().WithClock(settings.Now) },
		func(settings Settings) colors.Palette { return colors.NewPalette(colors.ColorEnabled(settings.NoColor)) },
		func(settings Settings, p colors.Palette) *suppression.Workflow {
			w := suppression.NewWorkflow(settings.In, settings.Out, p)
			w.Now = settings.Now
			return w
		},
		NewApp,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}
	return nil
}

// injectApp builds an App for s through a fresh container.
func injectApp(s Settings) (*App, error) {
	container := dig.New()
	if err := RegisterProviders(container, s); err != nil {
		return nil, err
	}

	var app *App
	if err := container.Invoke(func(a *App) {
		app = a
	}); err != nil {
		return nil, err
	}
	return app, nil
}
