// SPDX-License-Identifier: MPL-2.0

// Package config loads bundler configuration: viper defaults layered under
// an optional CUE config file validated against an embedded schema.
package config
