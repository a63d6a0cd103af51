package app

import (
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dshills/edbasics/internal/action"
	"github.com/dshills/edbasics/internal/config"
	"github.com/dshills/edbasics/internal/dispatcher"
	"github.com/dshills/edbasics/internal/dispatcher/handlers/caret"
	"github.com/dshills/edbasics/internal/editor"
	"github.com/dshills/edbasics/internal/input/typed"
	"github.com/dshills/edbasics/internal/plugin"
	"github.com/dshills/edbasics/internal/plugin/lua"
)

// bootstrap initializes components in dependency order. Handler
// registration is an explicit step here; nothing registers itself.
func (app *Application) bootstrap() error {
	// 1. Configuration
	if err := app.loadConfig(); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	// 2. Logging
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}

	// 3. Editor action handlers
	app.registry = dispatcher.NewRegistry()
	if err := caret.RegisterHandlers(app.registry); err != nil {
		return &InitError{Component: "handler registry", Err: err}
	}

	// 4. Commands from the plugin manifest
	if err := app.initCommands(); err != nil {
		return &InitError{Component: "commands", Err: err}
	}

	// 5. Typed-input pipeline
	app.pipeline = typed.NewPipeline(typed.WithLogger(app.logger))
	if err := app.installTypedHandlers(); err != nil {
		return &InitError{Component: "typed handlers", Err: err}
	}

	// 6. Project and editor
	if err := app.openEditor(); err != nil {
		return &InitError{Component: "editor", Err: err}
	}

	// 7. Config reload; failure only costs live reload
	app.startWatcher()

	app.logger.Info("application initialized",
		zap.String("editor", app.editor.Name()),
		zap.Strings("commands", commandIDs(app.commands)),
		zap.Strings("typedHandlers", app.pipeline.Installed()))
	return nil
}

func (app *Application) loadConfig() error {
	app.configPath = app.opts.ConfigPath
	if app.configPath == "" {
		app.configPath = config.DefaultPath()
	}

	cfg, err := config.Load(app.configPath)
	if err != nil {
		return err
	}
	app.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.config = cfg
	return nil
}

// applyOverrides lays command-line options over a loaded config.
func (app *Application) applyOverrides(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.ReadOnly {
		cfg.Editor.ReadOnly = true
	}
	if app.opts.Script != "" {
		cfg.Typed.Script = app.opts.Script
	}
	if app.opts.ManifestPath != "" {
		cfg.Plugin.Manifest = app.opts.ManifestPath
	}
}

func (app *Application) initLogger() error {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
		app.logLevel = zap.NewAtomicLevel()
		return nil
	}
	logger, level, err := NewLogger(app.config.Logging.Level, app.config.Logging.File)
	if err != nil {
		return err
	}
	app.logger = logger
	app.logLevel = level
	return nil
}

func (app *Application) initCommands() error {
	manifest := plugin.DefaultManifest()
	if path := app.config.Plugin.Manifest; path != "" {
		m, err := plugin.LoadManifest(path)
		if err != nil {
			return err
		}
		manifest = m
	}
	app.manifest = manifest

	app.commands = action.NewManager(app.logger.Named("commands"))
	return app.commands.Contribute(manifest, action.Builtins(app.registry))
}

// installTypedHandlers installs the handlers enabled in the current
// config. Handlers already installed are left alone, so this also runs
// on every config reload.
func (app *Application) installTypedHandlers() error {
	typedCfg := app.config.Typed

	if typedCfg.Enabled {
		if app.marker == nil {
			app.marker = typed.NewMarkerHandler(typedCfg.Marker, app.config.TypedMode())
		}
		typed.RegisterTypedHandler(app.pipeline, app.marker)
	}

	if typedCfg.Script != "" && app.script == nil {
		h, err := lua.NewScriptHandler(typedCfg.Script, app.logger.Named("lua"))
		if err != nil {
			return err
		}
		app.script = h
		typed.RegisterTypedHandler(app.pipeline, h)
	}
	return nil
}

func (app *Application) openEditor() error {
	opts := []editor.Option{editor.WithReadOnly(app.config.Editor.ReadOnly)}

	root := ""
	if app.opts.File != "" {
		ed, err := editor.Open(app.opts.File, opts...)
		switch {
		case err == nil:
			app.editor = ed
		case errors.Is(err, os.ErrNotExist):
			app.editor = editor.New("", append(opts, editor.WithPath(app.opts.File))...)
		default:
			return err
		}
		root = filepath.Dir(app.opts.File)
	} else {
		app.editor = editor.New("", opts...)
		if wd, err := os.Getwd(); err == nil {
			root = wd
		}
	}

	app.project = editor.NewProject(root)
	return nil
}

func (app *Application) startWatcher() {
	if app.configPath == "" {
		return
	}
	if _, err := os.Stat(filepath.Dir(app.configPath)); err != nil {
		app.logger.Debug("config directory missing, reload disabled", zap.String("path", app.configPath))
		return
	}

	w, err := config.NewWatcher(app.configPath, config.WithWatcherLogger(app.logger.Named("config")))
	if err != nil {
		app.logger.Warn("config watcher unavailable", zap.Error(err))
		return
	}
	w.OnChange(app.applyConfig)
	app.watcher = w
}

// applyConfig applies a reloaded config. Only settings that can change
// without rebuilding components are picked up.
func (app *Application) applyConfig(cfg *config.Config) {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.applyOverrides(cfg)

	if lvl, err := zap.ParseAtomicLevel(cfg.Logging.Level); err == nil {
		app.logLevel.SetLevel(lvl.Level())
	}
	app.editor.SetReadOnly(cfg.Editor.ReadOnly)

	app.config = cfg
	if err := app.installTypedHandlers(); err != nil {
		app.logger.Warn("installing typed handlers", zap.Error(err))
	}
}

func commandIDs(m *action.Manager) []string {
	cmds := m.Commands()
	ids := make([]string, len(cmds))
	for i, c := range cmds {
		ids[i] = c.ID
	}
	return ids
}
