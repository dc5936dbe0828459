// SPDX-License-Identifier: MPL-2.0

package gvox

// Result is the status a Handle reports after each call.
type Result int

// Success is the only non-error Result. Backends return their own non-zero
// values for failures; gvox-cli only distinguishes success from the rest.
const Success Result = 0

type (
	// Scene is an opaque loaded voxel scene. Only the Handle that produced it
	// may consume or destroy it.
	Scene any

	// Backend creates library contexts.
	Backend interface {
		CreateContext() Handle
	}

	// Handle is one library context. Its methods mirror the library's entry
	// points: calls never return errors directly; failures are recorded in
	// the context and observed through Result and PopErrorMessage.
	Handle interface {
		// Load reads a self-describing (wrapped) file.
		Load(path string) Scene
		// LoadRaw reads a file in the given format.
		LoadRaw(path string, format Format) Scene
		// Save writes scene wrapped, storing it inside as format.
		Save(scene Scene, path string, format Format)
		// SaveRaw writes scene in format without the wrapper.
		SaveRaw(scene Scene, path string, format Format)
		// Result reports the status at the head of the error queue.
		Result() Result
		// PopErrorMessage removes and returns the message at the head of
		// the error queue.
		PopErrorMessage() string
		// DestroyScene releases a scene returned by Load or LoadRaw.
		DestroyScene(scene Scene)
		// Destroy releases the context.
		Destroy()
	}
)
