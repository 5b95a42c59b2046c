// Package cmd implements the my-reboot command-line interface.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"my-reboot/internal/config"
	"my-reboot/internal/dialog"
	"my-reboot/internal/hostos"
	"my-reboot/internal/script"
	"my-reboot/internal/state"
	"my-reboot/internal/text"
)

// DialogRunner shows a dialog and returns what the user confirmed.
type DialogRunner func(ctx context.Context, m dialog.Model) (dialog.Outcome, bool, error)

// App holds application state shared across commands.
type App struct {
	Host     hostos.Host
	Settings config.Settings
	Logger   *slog.Logger
	Painter  *text.Painter
	Dialog   DialogRunner
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
}

// Provider opens the boot state under the configured state dir.
func (a *App) Provider() (*state.Provider, error) {
	p, err := state.Open(a.Settings.StateDir, a.Host.Switcher, a.Logger)
	if err != nil {
		return nil, err
	}
	p.SwitchTimeout = a.Settings.SwitchTimeout
	return p, nil
}

// Executor returns an executor applying scripts to p.
func (a *App) Executor(p *state.Provider) *script.Executor {
	return &script.Executor{
		Provider: p,
		Actuator: a.Host.Actuator,
		Out:      a.Out,
		Painter:  a.Painter,
		DryRun:   a.Settings.DryRun,
		Logger:   a.Logger,
	}
}

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigPath string
	StateDir   string
	DryRun     bool
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a fake host.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		In:  app.In,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	_, settings, err := config.Resolve(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	if p.StateDir != "" {
		settings.StateDir = p.StateDir
	}
	if p.DryRun {
		settings.DryRun = true
	}

	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	logger := newLogger(errOut, settings.Level())
	host := hostos.Current(logger)
	if s, ok := host.Switcher.(*hostos.PollingSwitcher); ok {
		s.Interval = settings.ProbeInterval
	}

	return &App{
		Host:     host,
		Settings: settings,
		Logger:   logger,
		Painter:  text.NewPainter(out),
		Dialog: func(ctx context.Context, m dialog.Model) (dialog.Outcome, bool, error) {
			return dialog.Run(ctx, m, in, out)
		},
		In:  in,
		Out: out,
		Err: errOut,
	}, nil
}
