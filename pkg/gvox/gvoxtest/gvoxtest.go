// SPDX-License-Identifier: MPL-2.0

// Package gvoxtest provides an in-memory gvox backend for tests.
//
// The backend stores scenes as plain byte payloads on an afero.Fs. A wrapped
// file is the header "GVOX", the inner format on its own line, then the
// payload; a raw file is just the payload. That is enough to check that the
// CLI picks the right entry point, path and format, and to drive error-queue
// handling with canned messages.
package gvoxtest

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/GabeRundlett/gvox-cli/pkg/gvox"

	"github.com/spf13/afero"
)

const wrappedHeader = "GVOX\n"

// failed is the status a handle reports while its queue is non-empty.
const failed gvox.Result = 1

type (
	// Backend is a recording gvox.Backend. The zero value is not usable;
	// create one with New.
	Backend struct {
		// Fs holds the scene files.
		Fs afero.Fs
		// LoadErrors are queued after every load, in addition to any error
		// the load itself produces.
		LoadErrors []string
		// SaveErrors are queued after every save and suppress the write.
		SaveErrors []string

		mu              sync.Mutex
		calls           []Call
		contexts        int
		destroyedCtx    int
		destroyedScenes int
	}

	// Call records one load or save entry-point invocation.
	Call struct {
		// Entry is "load", "load_raw", "save" or "save_raw".
		Entry  string
		Path   string
		Format gvox.Format
	}

	scene struct {
		payload []byte
	}

	handle struct {
		b         *Backend
		queue     []string
		destroyed bool
	}
)

// New creates a Backend that reads and writes scene files on fsys.
func New(fsys afero.Fs) *Backend {
	return &Backend{Fs: fsys}
}

// WriteWrapped stores payload at path as a wrapped file holding format.
func WriteWrapped(fsys afero.Fs, path string, format gvox.Format, payload []byte) error {
	var buf bytes.Buffer
	buf.WriteString(wrappedHeader)
	buf.WriteString(string(format))
	buf.WriteByte('\n')
	buf.Write(payload)
	return afero.WriteFile(fsys, path, buf.Bytes(), 0o644)
}

// ReadWrapped parses a wrapped file written by the backend.
func ReadWrapped(fsys afero.Fs, path string) (gvox.Format, []byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", nil, err
	}
	rest, ok := bytes.CutPrefix(data, []byte(wrappedHeader))
	if !ok {
		return "", nil, fmt.Errorf("%s: missing gvox header", path)
	}
	format, payload, ok := bytes.Cut(rest, []byte("\n"))
	if !ok {
		return "", nil, fmt.Errorf("%s: truncated gvox header", path)
	}
	return gvox.Format(format), payload, nil
}

// CreateContext implements gvox.Backend.
func (b *Backend) CreateContext() gvox.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.contexts++
	return &handle{b: b}
}

// Calls returns the recorded entry-point invocations in order.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// Contexts returns how many contexts were created and destroyed.
func (b *Backend) Contexts() (created, destroyed int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.contexts, b.destroyedCtx
}

// DestroyedScenes returns how many scenes were released.
func (b *Backend) DestroyedScenes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.destroyedScenes
}

func (b *Backend) record(entry, path string, format gvox.Format) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, Call{Entry: entry, Path: path, Format: format})
}

func (h *handle) Load(path string) gvox.Scene {
	h.b.record("load", path, "")
	_, payload, err := ReadWrapped(h.b.Fs, path)
	if err != nil {
		h.fail(err.Error())
	}
	h.fail(h.b.LoadErrors...)
	return &scene{payload: payload}
}

func (h *handle) LoadRaw(path string, format gvox.Format) gvox.Scene {
	h.b.record("load_raw", path, format)
	payload, err := afero.ReadFile(h.b.Fs, path)
	if err != nil {
		h.fail(err.Error())
	}
	h.fail(h.b.LoadErrors...)
	return &scene{payload: payload}
}

func (h *handle) Save(s gvox.Scene, path string, format gvox.Format) {
	h.b.record("save", path, format)
	if len(h.b.SaveErrors) > 0 {
		h.fail(h.b.SaveErrors...)
		return
	}
	if err := WriteWrapped(h.b.Fs, path, format, payloadOf(s)); err != nil {
		h.fail(err.Error())
	}
}

func (h *handle) SaveRaw(s gvox.Scene, path string, format gvox.Format) {
	h.b.record("save_raw", path, format)
	if len(h.b.SaveErrors) > 0 {
		h.fail(h.b.SaveErrors...)
		return
	}
	if err := afero.WriteFile(h.b.Fs, path, payloadOf(s), 0o644); err != nil {
		h.fail(err.Error())
	}
}

func (h *handle) Result() gvox.Result {
	if len(h.queue) > 0 {
		return failed
	}
	return gvox.Success
}

func (h *handle) PopErrorMessage() string {
	if len(h.queue) == 0 {
		return ""
	}
	msg := h.queue[0]
	h.queue = h.queue[1:]
	return msg
}

func (h *handle) DestroyScene(gvox.Scene) {
	h.b.mu.Lock()
	defer h.b.mu.Unlock()
	h.b.destroyedScenes++
}

func (h *handle) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	h.b.mu.Lock()
	defer h.b.mu.Unlock()
	h.b.destroyedCtx++
}

func (h *handle) fail(msgs ...string) {
	h.queue = append(h.queue, msgs...)
}

func payloadOf(s gvox.Scene) []byte {
	if sc, ok := s.(*scene); ok && sc != nil {
		return sc.payload
	}
	return nil
}
