package i

// Logger is the leveled logger used by services and controllers.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
