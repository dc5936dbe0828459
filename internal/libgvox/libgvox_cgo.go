// SPDX-License-Identifier: MPL-2.0

//go:build gvox && cgo

package libgvox

/*
#cgo LDFLAGS: -lgvox
#include <stdlib.h>
#include <gvox/gvox.h>
*/
import "C"

import (
	"unsafe"

	"github.com/GabeRundlett/gvox-cli/pkg/gvox"
)

// Available reports whether the native library is linked in.
const Available = true

type (
	backend struct{}

	handle struct {
		ctx *C.GVoxContext
	}

	scene struct {
		s C.GVoxScene
	}
)

// New returns a backend bound to the native gvox library.
func New() gvox.Backend {
	return backend{}
}

func (backend) CreateContext() gvox.Handle {
	return &handle{ctx: C.gvox_create_context()}
}

func (h *handle) Load(path string) gvox.Scene {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return &scene{s: C.gvox_load(h.ctx, cpath)}
}

func (h *handle) LoadRaw(path string, format gvox.Format) gvox.Scene {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cfmt := C.CString(string(format))
	defer C.free(unsafe.Pointer(cfmt))
	return &scene{s: C.gvox_load_from_raw(h.ctx, cpath, cfmt)}
}

func (h *handle) Save(s gvox.Scene, path string, format gvox.Format) {
	sc, ok := s.(*scene)
	if !ok {
		return
	}
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cfmt := C.CString(string(format))
	defer C.free(unsafe.Pointer(cfmt))
	C.gvox_save(h.ctx, &sc.s, cpath, cfmt)
}

func (h *handle) SaveRaw(s gvox.Scene, path string, format gvox.Format) {
	sc, ok := s.(*scene)
	if !ok {
		return
	}
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cfmt := C.CString(string(format))
	defer C.free(unsafe.Pointer(cfmt))
	C.gvox_save_as_raw(h.ctx, &sc.s, cpath, cfmt)
}

func (h *handle) Result() gvox.Result {
	return gvox.Result(C.gvox_get_result(h.ctx))
}

// PopErrorMessage queries the message size, copies the message, then pops
// the queue entry.
func (h *handle) PopErrorMessage() string {
	var size C.size_t
	C.gvox_get_result_message(h.ctx, nil, &size)
	var msg string
	if size > 0 {
		buf := (*C.char)(C.malloc(size + 1))
		defer C.free(unsafe.Pointer(buf))
		C.gvox_get_result_message(h.ctx, buf, &size)
		msg = C.GoStringN(buf, C.int(size))
	}
	C.gvox_pop_result(h.ctx)
	return trimNUL(msg)
}

func (h *handle) DestroyScene(s gvox.Scene) {
	if sc, ok := s.(*scene); ok {
		C.gvox_destroy_scene(&sc.s)
	}
}

func (h *handle) Destroy() {
	if h.ctx == nil {
		return
	}
	C.gvox_destroy_context(h.ctx)
	h.ctx = nil
}
