package sl

import "log/slog"

// Module tags a logger with the component it belongs to.
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// Err wraps an error into a slog attribute.
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Secret logs a sensitive value in redacted form, keeping only a short prefix.
func Secret(key, value string) slog.Attr {
	const keep = 4
	if len(value) > keep {
		value = value[:keep] + "..."
	}
	return slog.String(key, value)
}
