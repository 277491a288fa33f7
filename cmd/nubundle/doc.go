// SPDX-License-Identifier: MPL-2.0

// nubundle bundles a multi-file Nushell script tree into a single
// self-contained executable artifact. Commands live one per file; shared
// styling is in styles.go and exit codes travel through ExitError.
package main
