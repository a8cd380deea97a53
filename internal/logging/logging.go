// File internal/logging/logging.go
package logging

import "go.uber.org/zap"

// New builds the engine's internal diagnostics logger. It is never
// used for the stdin/stdout protocol's required output — those
// lines go through plain fmt.Println/Fprintln so their exact text is
// never touched by zap's encoder.
func New(level string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}
