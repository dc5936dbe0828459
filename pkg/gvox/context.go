// SPDX-License-Identifier: MPL-2.0

package gvox

import (
	"context"
	"fmt"
)

// maxDrainedMessages bounds draining so a backend that never reports
// success again cannot spin forever.
const maxDrainedMessages = 4096

type (
	// Context is a library context that reports failures as *Error values.
	// It is not safe for concurrent use.
	Context struct {
		handle Handle
		closed bool
	}

	// LoadedScene is a scene owned by a Context.
	LoadedScene struct {
		ctx   *Context
		scene Scene
		freed bool
	}
)

// NewContext creates a library context on backend.
func NewContext(backend Backend) *Context {
	return &Context{handle: backend.CreateContext()}
}

// Load reads a wrapped file.
func (c *Context) Load(ctx context.Context, path string) (*LoadedScene, error) {
	return c.load(ctx, path, func() Scene { return c.handle.Load(path) })
}

// LoadRaw reads path as format.
func (c *Context) LoadRaw(ctx context.Context, path string, format Format) (*LoadedScene, error) {
	return c.load(ctx, path, func() Scene { return c.handle.LoadRaw(path, format) })
}

// Save writes s wrapped, with format as the inner format.
func (c *Context) Save(ctx context.Context, s *LoadedScene, path string, format Format) error {
	return c.save(ctx, path, func() { c.handle.Save(s.scene, path, format) })
}

// SaveRaw writes s as format without the wrapper.
func (c *Context) SaveRaw(ctx context.Context, s *LoadedScene, path string, format Format) error {
	return c.save(ctx, path, func() { c.handle.SaveRaw(s.scene, path, format) })
}

// Close destroys the underlying library context. It is idempotent.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.handle.Destroy()
}

func (c *Context) load(ctx context.Context, path string, call func() Scene) (*LoadedScene, error) {
	if err := c.ready(ctx, OpLoad); err != nil {
		return nil, err
	}
	s := &LoadedScene{ctx: c, scene: call()}
	if msgs := c.drain(); msgs != nil {
		// The library hands back a scene value even on failure; it still
		// has to be released.
		return s, &Error{Op: OpLoad, Path: path, Messages: msgs}
	}
	return s, nil
}

func (c *Context) save(ctx context.Context, path string, call func()) error {
	if err := c.ready(ctx, OpSave); err != nil {
		return err
	}
	call()
	if msgs := c.drain(); msgs != nil {
		return &Error{Op: OpSave, Path: path, Messages: msgs}
	}
	return nil
}

func (c *Context) ready(ctx context.Context, op Op) error {
	if c.closed {
		return ErrContextClosed
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gvox %s canceled: %w", op, err)
	}
	return nil
}

// drain pops every queued message until the handle reports success. It
// returns nil when the context was already in a success state.
func (c *Context) drain() []string {
	var msgs []string
	for c.handle.Result() != Success {
		if len(msgs) == maxDrainedMessages {
			msgs = append(msgs, fmt.Sprintf("error queue not drained after %d messages", maxDrainedMessages))
			break
		}
		msgs = append(msgs, c.handle.PopErrorMessage())
	}
	return msgs
}

// Close releases the scene. It is idempotent and safe on a nil receiver.
func (s *LoadedScene) Close() {
	if s == nil || s.freed {
		return
	}
	s.freed = true
	s.ctx.handle.DestroyScene(s.scene)
}
