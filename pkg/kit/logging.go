package kit

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewLogger builds the production JSON logger. Every line carries the
// service name and a per-process instance id.
func NewLogger(service, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = lvl
	}
	cfg.InitialFields = map[string]any{
		"service":  service,
		"instance": uuid.NewString(),
	}
	return cfg.Build()
}
