package supportai

// Metrics интерфейс счетчика обращений к ассистенту
type Metrics interface {
	IncSupportRequests(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
