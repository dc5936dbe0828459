// SPDX-License-Identifier: MPL-2.0

package gvox_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GabeRundlett/gvox-cli/pkg/gvox"
	"github.com/GabeRundlett/gvox-cli/pkg/gvox/gvoxtest"

	"github.com/spf13/afero"
)

func TestContext_LoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := gvoxtest.WriteWrapped(fsys, "in.gvox", gvox.DefaultOutput, []byte("voxels")); err != nil {
		t.Fatal(err)
	}
	backend := gvoxtest.New(fsys)
	ctx := context.Background()

	gctx := gvox.NewContext(backend)
	defer gctx.Close()

	scene, err := gctx.Load(ctx, "in.gvox")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	defer scene.Close()

	if err := gctx.SaveRaw(ctx, scene, "out.vox", gvox.MagicaVoxel); err != nil {
		t.Fatalf("SaveRaw() error: %v", err)
	}

	data, err := afero.ReadFile(fsys, "out.vox")
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "voxels" {
		t.Errorf("output payload = %q, want %q", data, "voxels")
	}
}

func TestContext_LoadFailureDrainsQueueInOrder(t *testing.T) {
	t.Parallel()

	backend := gvoxtest.New(afero.NewMemMapFs())
	backend.LoadErrors = []string{"first", "second"}

	gctx := gvox.NewContext(backend)
	defer gctx.Close()

	scene, err := gctx.LoadRaw(context.Background(), "missing.vox", gvox.MagicaVoxel)
	defer scene.Close()
	if err == nil {
		t.Fatal("LoadRaw() error = nil, want failure")
	}
	if !errors.Is(err, gvox.ErrLibrary) {
		t.Errorf("error should wrap ErrLibrary, got %v", err)
	}

	var gerr *gvox.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error should be *gvox.Error, got %T", err)
	}
	if gerr.Op != gvox.OpLoad {
		t.Errorf("Op = %q, want %q", gerr.Op, gvox.OpLoad)
	}
	// The missing file is reported first, then the canned messages.
	if len(gerr.Messages) != 3 {
		t.Fatalf("Messages = %q, want 3 entries", gerr.Messages)
	}
	if gerr.Messages[1] != "first" || gerr.Messages[2] != "second" {
		t.Errorf("Messages = %q, want queue order preserved", gerr.Messages)
	}
}

func TestContext_SaveFailure(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "in.vxl", []byte("map"), 0o644); err != nil {
		t.Fatal(err)
	}
	backend := gvoxtest.New(fsys)
	backend.SaveErrors = []string{"unknown format 'nope'"}

	gctx := gvox.NewContext(backend)
	defer gctx.Close()

	scene, err := gctx.LoadRaw(context.Background(), "in.vxl", gvox.AceOfSpades)
	if err != nil {
		t.Fatalf("LoadRaw() error: %v", err)
	}
	defer scene.Close()

	err = gctx.Save(context.Background(), scene, "out.gvox", "nope")
	var gerr *gvox.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("Save() error = %v, want *gvox.Error", err)
	}
	if gerr.Op != gvox.OpSave {
		t.Errorf("Op = %q, want %q", gerr.Op, gvox.OpSave)
	}
	if !strings.Contains(err.Error(), "unknown format 'nope'") {
		t.Errorf("Error() = %q, want message included", err.Error())
	}
}

func TestContext_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	backend := gvoxtest.New(afero.NewMemMapFs())
	gctx := gvox.NewContext(backend)
	gctx.Close()
	gctx.Close()

	created, destroyed := backend.Contexts()
	if created != 1 || destroyed != 1 {
		t.Errorf("Contexts() = (%d, %d), want (1, 1)", created, destroyed)
	}

	if _, err := gctx.Load(context.Background(), "x.gvox"); !errors.Is(err, gvox.ErrContextClosed) {
		t.Errorf("Load() after Close error = %v, want ErrContextClosed", err)
	}
}

func TestContext_CanceledContext(t *testing.T) {
	t.Parallel()

	backend := gvoxtest.New(afero.NewMemMapFs())
	gctx := gvox.NewContext(backend)
	defer gctx.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gctx.Load(ctx, "x.gvox"); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
	if len(backend.Calls()) != 0 {
		t.Errorf("backend called after cancellation: %v", backend.Calls())
	}
}

func TestLoadedScene_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "in.vox", []byte("v"), 0o644); err != nil {
		t.Fatal(err)
	}
	backend := gvoxtest.New(fsys)
	gctx := gvox.NewContext(backend)
	defer gctx.Close()

	scene, err := gctx.LoadRaw(context.Background(), "in.vox", gvox.MagicaVoxel)
	if err != nil {
		t.Fatal(err)
	}
	scene.Close()
	scene.Close()

	if got := backend.DestroyedScenes(); got != 1 {
		t.Errorf("DestroyedScenes() = %d, want 1", got)
	}

	var nilScene *gvox.LoadedScene
	nilScene.Close()
}

// stuckBackend never leaves the failure state.
type stuckBackend struct{}

type stuckHandle struct{ pops int }

func (stuckBackend) CreateContext() gvox.Handle { return &stuckHandle{} }

func (h *stuckHandle) Load(string) gvox.Scene                  { return nil }
func (h *stuckHandle) LoadRaw(string, gvox.Format) gvox.Scene  { return nil }
func (h *stuckHandle) Save(gvox.Scene, string, gvox.Format)    {}
func (h *stuckHandle) SaveRaw(gvox.Scene, string, gvox.Format) {}
func (h *stuckHandle) Result() gvox.Result                     { return 7 }
func (h *stuckHandle) PopErrorMessage() string                 { h.pops++; return "again" }
func (h *stuckHandle) DestroyScene(gvox.Scene)                 {}
func (h *stuckHandle) Destroy()                                {}

func TestContext_DrainIsBounded(t *testing.T) {
	t.Parallel()

	gctx := gvox.NewContext(stuckBackend{})
	defer gctx.Close()

	_, err := gctx.Load(context.Background(), "x.gvox")
	var gerr *gvox.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("Load() error = %v, want *gvox.Error", err)
	}
	last := gerr.Messages[len(gerr.Messages)-1]
	if !strings.Contains(last, "not drained") {
		t.Errorf("last message = %q, want drain limit notice", last)
	}
}
