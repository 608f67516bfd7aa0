// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the Cobra command tree of the measure CLI.
//
// App is the composition root: each invocation loads the configuration, builds
// one sealed catalog from the standard unit set plus the configured custom units
// and rates, and hands it to the command.
package cmd
