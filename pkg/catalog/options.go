// SPDX-License-Identifier: MPL-2.0

package catalog

import "log/slog"

type (
	builderOptions struct {
		logger *slog.Logger
	}

	// Option configures a Builder during construction.
	Option func(*builderOptions)
)

func defaultOptions() builderOptions {
	return builderOptions{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for seal-time diagnostics.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *builderOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
