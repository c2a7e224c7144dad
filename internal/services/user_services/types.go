// File: internal/services/user_services/types.go
package user_services

// Logger matches the common services logging interface without importing it,
// keeping this package free of a services dependency cycle.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
