// SPDX-License-Identifier: MPL-2.0

// Package ui holds the terminal presentation shared by the resolver, the
// dispatcher and the CLI host: the lipgloss palette, tag styles for the
// "[ERROR]"/"[WARNING]" lines, and the charmbracelet/log logger.
package ui
