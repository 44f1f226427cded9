package argparse

import (
	"log/slog"
)

func must(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error(err.Error())
	}
}

// valueOrDefault returns def when v is the zero value of T.
func valueOrDefault[T comparable](v T, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
