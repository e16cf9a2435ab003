package ports

//go:generate mockgen -source=logger.go -destination=mocks/logger.go -package=mocks

// Logger is the logging interface used across the application.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
