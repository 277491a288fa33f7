// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and renderable issue
// cards for the bundler's known failure classes.
package issue
