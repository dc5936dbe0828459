// SPDX-License-Identifier: MPL-2.0

// Package gvox defines the boundary between gvox-cli and the gvox voxel
// format library.
//
// The library is an external collaborator: it owns the scene data model, the
// format codecs, and a per-context queue of error messages. This package
// describes that contract as two interfaces (Backend and Handle) that mirror
// the library's C entry points, and wraps them in Context, which turns the
// library's status-plus-queue reporting into ordinary Go errors.
//
// Concrete backends live elsewhere: internal/libgvox binds the native library
// through cgo, and gvoxtest provides an in-memory backend for tests.
package gvox
