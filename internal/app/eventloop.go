package app

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/edbasics/internal/action"
	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/engine/buffer"
)

// Init prepares the terminal screen. Run calls it if needed.
func (app *Application) Init() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.screen != nil {
		return nil
	}
	screen := app.opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return &InitError{Component: "screen", Err: err}
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	screen.EnablePaste()
	app.screen = screen
	return nil
}

// Run processes screen events until the user quits or the screen is
// finalized. Panics from commands are not recovered.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.Init(); err != nil {
		return err
	}
	screen := app.currentScreen()
	if screen == nil {
		return ErrNoScreen
	}

	app.render()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := app.HandleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		app.render()
	}
}

func (app *Application) currentScreen() tcell.Screen {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.screen
}

// HandleEvent processes one screen event. It returns ErrQuit when the
// application should exit.
func (app *Application) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventResize:
		if s := app.currentScreen(); s != nil {
			s.Sync()
		}
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	name := KeyName(ev)
	switch name {
	case "ctrl+q", "ctrl+c":
		return ErrQuit
	}

	if cmd, ok := app.commands.CommandForKey(name); ok {
		app.invoke(cmd)
		return nil
	}

	if r, ok := typedRune(ev); ok {
		app.typeRune(r)
	}
	return nil
}

func (app *Application) invoke(cmd *action.Command) {
	err := app.commands.Invoke(cmd.ID, app.context("key"))
	switch {
	case err == nil:
		app.setStatus(cmd.Label)
	case errors.Is(err, action.ErrDisabled):
		app.setStatus(cmd.Label + ": not available")
	default:
		app.logger.Warn("command failed", zap.String("command", cmd.ID), zap.Error(err))
		app.setStatus(err.Error())
	}
}

func (app *Application) typeRune(r rune) {
	ctx := app.context("typing")
	ctx.SetData(execctx.DataKeyTypedChar, r)
	if err := app.pipeline.Type(app.editor, r, ctx); err != nil {
		app.logger.Debug("typing rejected", zap.Error(err))
		app.setStatus(err.Error())
		return
	}
	app.setStatus("")
}

// KeyName returns the binding name of a key event, such as "ctrl+d" or
// "esc". Plain runes return the rune itself.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case ev.Modifiers()&tcell.ModCtrl != 0:
			return "ctrl+" + string(unicode.ToLower(r))
		case ev.Modifiers()&tcell.ModAlt != 0:
			return "alt+" + string(r)
		}
		return string(r)
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))
	}
	return strings.ToLower(ev.Name())
}

// typedRune reports the character a key event types, if any.
func typedRune(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return '\n', true
	case tcell.KeyTab:
		return '\t', true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return 0, false
		}
		return ev.Rune(), true
	}
	return 0, false
}

var (
	textStyle   = tcell.StyleDefault
	caretStyle  = tcell.StyleDefault.Reverse(true)
	statusStyle = tcell.StyleDefault.Reverse(true).Bold(true)
)

// render draws the buffer, carets and status line.
func (app *Application) render() {
	app.mu.Lock()
	defer app.mu.Unlock()

	s := app.screen
	if s == nil {
		return
	}
	s.Clear()
	width, height := s.Size()
	if height == 0 {
		return
	}

	buf := app.editor.Buffer()
	rows := height - 1
	for line := 0; line < rows && uint32(line) < buf.LineCount(); line++ {
		for x, r := range []rune(buf.LineText(uint32(line))) {
			if x >= width {
				break
			}
			s.SetContent(x, line, r, nil, textStyle)
		}
	}

	for _, sel := range app.editor.Cursors().All() {
		p := buf.OffsetToPoint(sel.Head)
		x, y, r := caretCell(buf, p)
		if y >= rows || x >= width {
			continue
		}
		s.SetContent(x, y, r, nil, caretStyle)
	}

	status := []rune(fmt.Sprintf(" %s | %d caret(s) | %s",
		app.editor.Name(), app.editor.Cursors().Count(), app.status))
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		s.SetContent(x, height-1, r, nil, statusStyle)
	}
	s.Show()
}

// caretCell converts a buffer point to a screen cell, counting runes
// rather than bytes. r is the character under the caret.
func caretCell(buf *buffer.Buffer, p buffer.Point) (x, y int, r rune) {
	line := buf.LineText(p.Line)
	col := int(p.Column)
	if col > len(line) {
		col = len(line)
	}
	r = ' '
	if rest := []rune(line[col:]); len(rest) > 0 {
		r = rest[0]
	}
	return len([]rune(line[:col])), int(p.Line), r
}
