package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Schema records the DTO schema name under the key "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Field records a field path under the key "field".
func Field(path string) slog.Attr {
	return slog.String("field", path)
}

// Rule records the failing rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Fields records a list of field paths under the key "fields".
// If the list is empty, it returns an empty Attr.
func Fields(paths []string) slog.Attr {
	if len(paths) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", paths)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}
