package logger

import (
	"fmt"
	"log/slog"
)

// The helpers below return an empty slog.Attr for empty input; slog drops
// empty attributes, so callers need no nil checks.

// sessionIDPrefix is how much of a session id reaches the logs.
const sessionIDPrefix = 12

// Error records err under "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records a user id under "user_id" as a string, so ids passed as
// uuid.UUID and as text log the same way.
func UserID(id any) slog.Attr {
	switch v := id.(type) {
	case nil:
		return slog.Attr{}
	case string:
		if v == "" {
			return slog.Attr{}
		}
		return slog.String("user_id", v)
	case fmt.Stringer:
		return slog.String("user_id", v.String())
	default:
		return slog.String("user_id", fmt.Sprint(v))
	}
}

// SessionID records a prefix of the session id under "session_id".
// Session ids are token digests; the prefix is enough to correlate log lines.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id[:min(len(id), sessionIDPrefix)])
}

// Email records an already-masked address under "email".
func Email(masked string) slog.Attr {
	if masked == "" {
		return slog.Attr{}
	}
	return slog.String("email", masked)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}
