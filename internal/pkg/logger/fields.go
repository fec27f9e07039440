package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field type alias for better abstraction
type Field = zap.Field

// Field constructors so callers never import zap directly

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// RequestID tags an entry with the request correlation id
func RequestID(id string) Field {
	return zap.String("request_id", id)
}

// TutorID tags an entry with the authenticated tutor
func TutorID(id string) Field {
	return zap.String("tutor_id", id)
}

// WalkerID tags an entry with a walker
func WalkerID(id string) Field {
	return zap.String("walker_id", id)
}
