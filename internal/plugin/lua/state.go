package lua

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultExecutionTimeout bounds every script execution.
const DefaultExecutionTimeout = 100 * time.Millisecond

// State wraps a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes all
// access from Go.
type State struct {
	L *lua.LState

	mu      sync.Mutex
	timeout time.Duration
	closed  bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the timeout applied to each execution.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewState creates a new sandboxed Lua state.
func NewState(opts ...StateOption) *State {
	s := &State{timeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	installSandbox(L)
	s.L = L
	return s
}

// DoString executes a Lua chunk.
func (s *State) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.run(func() error {
		return s.L.DoString(code)
	})
}

// DoFile executes a Lua file. The path is read by Go; the script itself
// has no file access.
func (s *State) DoFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.run(func() error {
		return s.L.DoFile(path)
	})
}

// HasFunction reports whether the named global is a function.
func (s *State) HasFunction(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	return s.L.GetGlobal(name).Type() == lua.LTFunction
}

// Call calls a global Lua function and returns its results.
func (s *State) Call(name string, args ...lua.LValue) ([]lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStateClosed
	}

	fn := s.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}

	top := s.L.GetTop()
	err := s.run(func() error {
		s.L.Push(fn)
		for _, arg := range args {
			s.L.Push(arg)
		}
		return s.L.PCall(len(args), lua.MultRet, nil)
	})
	if err != nil {
		s.L.SetTop(top)
		return nil, err
	}

	n := s.L.GetTop() - top
	results := make([]lua.LValue, n)
	for i := 0; i < n; i++ {
		results[i] = s.L.Get(top + i + 1)
	}
	s.L.SetTop(top)
	return results, nil
}

// run executes fn under the state's timeout, converting panics and
// cancellation into errors. Caller holds mu.
func (s *State) run(fn func() error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	err = fn()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrExecutionTimeout, err)
	}
	return err
}

// Close releases the Lua state. Later calls return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
