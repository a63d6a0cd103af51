package action

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/edbasics/internal/dispatcher/execctx"
	"github.com/dshills/edbasics/internal/plugin"
)

// Command is a registered action with its presentation metadata.
type Command struct {
	ID     string
	Label  string
	Key    string
	Group  string
	Action Action
}

// Manager holds the commands the host can present and invoke.
type Manager struct {
	mu       sync.RWMutex
	commands map[string]*Command
	keys     map[string]string // key -> command id
	logger   *zap.Logger
}

// NewManager creates an empty manager. A nil logger disables logging.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		commands: make(map[string]*Command),
		keys:     make(map[string]string),
		logger:   logger,
	}
}

// Register adds a command. A later command bound to the same key takes
// the binding over.
func (m *Manager) Register(cmd Command) error {
	if cmd.ID == "" || cmd.Action == nil {
		return fmt.Errorf("register command %q: id and action are required", cmd.ID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.commands[cmd.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.ID)
	}
	c := cmd
	m.commands[cmd.ID] = &c
	if cmd.Key != "" {
		if prev, ok := m.keys[cmd.Key]; ok {
			m.logger.Warn("key binding replaced",
				zap.String("key", cmd.Key),
				zap.String("previous", prev),
				zap.String("command", cmd.ID))
		}
		m.keys[cmd.Key] = cmd.ID
	}
	return nil
}

// Contribute registers every action declared in a manifest, resolving
// implementations by name from impls.
func (m *Manager) Contribute(man *plugin.Manifest, impls map[string]Action) error {
	for _, a := range man.Actions {
		impl, ok := impls[a.Implementation]
		if !ok {
			return fmt.Errorf("%w: %s (action %s)", ErrUnknownImplementation, a.Implementation, a.ID)
		}
		err := m.Register(Command{
			ID:     a.ID,
			Label:  a.Label,
			Key:    a.Key,
			Group:  a.Group,
			Action: impl,
		})
		if err != nil {
			return err
		}
	}
	m.logger.Debug("manifest contributed",
		zap.String("plugin", man.Name),
		zap.Int("actions", len(man.Actions)))
	return nil
}

// Command returns the command registered under id.
func (m *Manager) Command(id string) (*Command, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.commands[id]
	return c, ok
}

// CommandForKey returns the command bound to key.
func (m *Manager) CommandForKey(key string) (*Command, bool) {
	m.mu.RLock()
	id, ok := m.keys[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return m.Command(id)
}

// Commands returns all commands sorted by id.
func (m *Manager) Commands() []*Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cmds := make([]*Command, 0, len(m.commands))
	for _, c := range m.commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].ID < cmds[j].ID })
	return cmds
}

// Update computes the presentation of the command registered under id.
func (m *Manager) Update(id string, ctx *execctx.ExecutionContext) (Presentation, error) {
	c, ok := m.Command(id)
	if !ok {
		return Presentation{}, fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	return c.Action.Update(ctx), nil
}

// Invoke runs the command registered under id if it is enabled in ctx.
func (m *Manager) Invoke(id string, ctx *execctx.ExecutionContext) error {
	c, ok := m.Command(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	if !c.Action.Update(ctx).Enabled {
		m.logger.Debug("command disabled", zap.String("command", id))
		return fmt.Errorf("%w: %s", ErrDisabled, id)
	}

	m.logger.Debug("invoking command", zap.String("command", id))
	if err := c.Action.Execute(ctx); err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	return nil
}
