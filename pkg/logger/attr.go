package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Browser records a browser family key under the key "browser".
// An empty family yields an empty Attr.
func Browser(family string) slog.Attr {
	if family == "" {
		return slog.Attr{}
	}
	return slog.String("browser", family)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Seed(seed uint64) slog.Attr {
	return slog.Uint64("seed", seed)
}

func OutputFormat(format string) slog.Attr {
	return slog.String("format", format)
}
