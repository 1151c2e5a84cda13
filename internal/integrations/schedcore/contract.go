package schedcore

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс записи метрик исходящих запросов.
// Может быть nil, если метрики выключены.
type MetricsRecorder interface {
	ObserveUpstream(target, operation, outcome string, seconds float64)
}
