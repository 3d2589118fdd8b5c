// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging and user-facing warnings.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	// Warn reports a non-fatal degradation, such as a package without a
	// declared module-dependency configuration.
	Warn(msg string)
	Error(err error)
}
