// SPDX-License-Identifier: MPL-2.0

//go:build !gvox || !cgo

package libgvox

import "github.com/GabeRundlett/gvox-cli/pkg/gvox"

// Available reports whether the native library is linked in.
const Available = false

type (
	backend struct{}

	handle struct {
		queue []string
	}
)

// New returns a backend that reports the missing native library.
func New() gvox.Backend {
	return backend{}
}

func (backend) CreateContext() gvox.Handle { return &handle{} }

func (h *handle) Load(string) gvox.Scene {
	h.queue = append(h.queue, unavailableMessage)
	return nil
}

func (h *handle) LoadRaw(string, gvox.Format) gvox.Scene {
	h.queue = append(h.queue, unavailableMessage)
	return nil
}

func (h *handle) Save(gvox.Scene, string, gvox.Format) {
	h.queue = append(h.queue, unavailableMessage)
}

func (h *handle) SaveRaw(gvox.Scene, string, gvox.Format) {
	h.queue = append(h.queue, unavailableMessage)
}

func (h *handle) Result() gvox.Result {
	if len(h.queue) > 0 {
		return 1
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

func (h *handle) DestroyScene(gvox.Scene) {}

func (h *handle) Destroy() {}
