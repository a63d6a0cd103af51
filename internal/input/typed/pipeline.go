package typed

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/editor"
)

// Pipeline holds the handler every typed character is routed through.
type Pipeline struct {
	mu        sync.RWMutex
	current   Handler
	installed map[string]struct{}
	logger    *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates a pipeline with DefaultHandler installed.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		current:   DefaultHandler{},
		installed: make(map[string]struct{}),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handler returns the currently installed handler.
func (p *Pipeline) Handler() Handler {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// SetupHandler installs h and returns the handler it replaced. If h
// implements Chainer it is given the previous handler first.
func (p *Pipeline) SetupHandler(h Handler) Handler {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.setupLocked(h)
}

// setupLocked installs h. Caller holds mu.
func (p *Pipeline) setupLocked(h Handler) Handler {
	prev := p.current
	if c, ok := h.(Chainer); ok {
		c.SetPrevious(prev)
	}
	p.current = h
	return prev
}

// Installed returns the IDs of handlers added with RegisterTypedHandler.
func (p *Pipeline) Installed() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]string, 0, len(p.installed))
	for id := range p.installed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Type routes one typed character to the current handler.
func (p *Pipeline) Type(ed *editor.Editor, ch rune, ctx *execctx.ExecutionContext) error {
	if ed == nil {
		return execctx.ErrMissingEditor
	}
	if ed.IsReadOnly() {
		return editor.ErrReadOnly
	}
	h := p.Handler()
	if h == nil {
		return ErrNoHandler
	}
	return h.Execute(ed, ch, ctx)
}

// RegisterTypedHandler installs h into p once. It reports whether the
// handler was installed; a handler whose ID is already installed is left
// alone.
func RegisterTypedHandler(p *Pipeline, h Installable) bool {
	p.mu.Lock()
	if _, ok := p.installed[h.ID()]; ok {
		p.mu.Unlock()
		p.logger.Debug("typed handler already installed", zap.String("handler", h.ID()))
		return false
	}
	p.installed[h.ID()] = struct{}{}
	p.setupLocked(h)
	p.mu.Unlock()

	p.logger.Info("typed handler installed", zap.String("handler", h.ID()))
	return true
}
