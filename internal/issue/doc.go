// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and recovery
// suggestions. It can link to an Issue: a markdown guide rendered with glamour when a
// known conversion or configuration failure reaches the CLI.
package issue
