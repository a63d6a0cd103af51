// Package app wires the editor host together and runs its event loop.
package app

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/edbasics/internal/action"
	"github.com/dshills/edbasics/internal/config"
	"github.com/dshills/edbasics/internal/dispatcher"
	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/input/typed"
	"github.com/dshills/edbasics/internal/plugin"
	"github.com/dshills/edbasics/internal/plugin/lua"
)

// Options configures the application. Non-zero fields override the
// config file.
type Options struct {
	// ConfigPath is the TOML config file. Empty uses config.DefaultPath.
	ConfigPath string

	// ManifestPath is a plugin manifest replacing the built-in one.
	ManifestPath string

	// File is opened on startup. Empty starts with a scratch editor.
	File string

	// LogLevel overrides logging.level.
	LogLevel string

	// ReadOnly opens the editor read-only.
	ReadOnly bool

	// Script is a Lua typed-input script to install.
	Script string

	// Screen replaces the terminal screen, mainly for tests.
	Screen tcell.Screen

	// Logger replaces the logger built from config.
	Logger *zap.Logger
}

// Application owns every host component.
type Application struct {
	opts Options

	config     *config.Config
	configPath string
	logger     *zap.Logger
	logLevel   zap.AtomicLevel
	watcher    *config.Watcher

	manifest *plugin.Manifest
	registry *dispatcher.Registry
	commands *action.Manager
	pipeline *typed.Pipeline
	marker   *typed.MarkerHandler
	script   *lua.ScriptHandler

	project *editor.Project
	editor  *editor.Editor

	// mu guards config reloads and the screen state below.
	mu     sync.Mutex
	screen tcell.Screen
	status string

	running  atomic.Bool
	shutdown sync.Once
}

// New creates an application and runs the startup sequence.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}
	return app, nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.config
}

// Logger returns the application logger.
func (app *Application) Logger() *zap.Logger { return app.logger }

// Registry returns the editor action handler registry.
func (app *Application) Registry() *dispatcher.Registry { return app.registry }

// Commands returns the command manager.
func (app *Application) Commands() *action.Manager { return app.commands }

// Pipeline returns the typed-input pipeline.
func (app *Application) Pipeline() *typed.Pipeline { return app.pipeline }

// Editor returns the open editor.
func (app *Application) Editor() *editor.Editor { return app.editor }

// Project returns the open project.
func (app *Application) Project() *editor.Project { return app.project }

// Status returns the current status line message.
func (app *Application) Status() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.status
}

func (app *Application) setStatus(msg string) {
	app.mu.Lock()
	app.status = msg
	app.mu.Unlock()
}

// IsRunning reports whether the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// context builds the execution context commands and typed handlers see.
func (app *Application) context(place string) *execctx.ExecutionContext {
	ctx := execctx.New().WithData(execctx.DataKeyPlace, place)
	if app.project != nil {
		ctx = ctx.WithProject(app.project)
	}
	if app.editor != nil {
		ctx = ctx.WithEditor(app.editor)
	}
	return ctx
}

// Context returns an execution context for the open editor, as seen
// from a menu.
func (app *Application) Context() *execctx.ExecutionContext {
	return app.context("menu")
}

// InvokeCommand runs a command against the open editor.
func (app *Application) InvokeCommand(id string) error {
	return app.commands.Invoke(id, app.Context())
}

// Shutdown releases resources. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.logger.Warn("closing config watcher", zap.Error(err))
			}
		}
		if app.script != nil {
			_ = app.script.Close()
		}
		app.mu.Lock()
		if app.screen != nil {
			app.screen.Fini()
			app.screen = nil
		}
		app.mu.Unlock()
		if app.logger != nil {
			_ = app.logger.Sync()
		}
	})
}
