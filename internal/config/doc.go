// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/measure/config.cue (or the XDG equivalent on Linux,
// ~/Library/Application Support/measure/config.cue on macOS, %APPDATA%\measure\config.cue
// on Windows), falling back to ./config.cue. See Config for the recognized keys.
//
// Files are validated against the embedded CUE schema (config_schema.cue) before they are
// merged over the defaults.
package config
