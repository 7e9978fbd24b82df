package formstate

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formstate/pkg/config"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Config holds environment-driven defaults for building fieldsets.
type Config struct {
	Adapter           string        `env:"FORMSTATE_ADAPTER" envDefault:"plain"`
	ValidationTimeout time.Duration `env:"FORMSTATE_VALIDATION_TIMEOUT" envDefault:"0s"`
	LogLevel          string        `env:"FORMSTATE_LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"FORMSTATE_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds a logger writing to w with the configured level and format.
// extra options are applied last.
func (c Config) Logger(w io.Writer, extra ...logger.Option) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	opts := append([]logger.Option{
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithComponent("formstate"),
	}, extra...)
	return logger.New(opts...), nil
}

// NewFieldsetFromConfig builds a Fieldset using the configured adapter and
// validation timeout. Options passed explicitly are applied after the
// configured ones and win.
func NewFieldsetFromConfig(cfg Config, rules []FieldRule, opts ...Option) (*Fieldset, error) {
	adapter, err := ParseAdapter(cfg.Adapter)
	if err != nil {
		return nil, err
	}
	all := append([]Option{WithValidationTimeout(cfg.ValidationTimeout)}, opts...)
	return NewFieldset(adapter, rules, all...)
}
