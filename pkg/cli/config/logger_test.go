package config_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/monogate/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "error", level: "error"},
		{name: "uppercase accepted", level: "DEBUG"},
		{name: "mixed case accepted", level: "Info"},
		{name: "unknown level", level: "verbose", wantErr: true},
		{name: "misspelled level", level: "warning", wantErr: true},
		{name: "empty level", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Logger{Level: tt.level}

			logger, err := cfg.Configure()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Configure() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Error("Configure() returned nil logger for valid input")
			}
		})
	}
}

func TestLogger_Configure_JSONLevel(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Logger{Level: "warn", JSON: true}
	logger, err := cfg.Configure()
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	if logger.Enabled(ctx, slog.LevelInfo) {
		t.Error("info should be suppressed at warn level")
	}
	if !logger.Enabled(ctx, slog.LevelWarn) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestLogger_Configure_ConsoleHandler(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			cfg := &config.Logger{Level: level}

			logger, err := cfg.Configure()
			if err != nil {
				t.Fatalf("Configure() error = %v", err)
			}

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")
		})
	}
}

func TestLogger_Flags(t *testing.T) {
	var cfg config.Logger
	flags := cfg.Flags()

	if len(flags) != 2 {
		t.Fatalf("Flags() returned %d flags, want 2", len(flags))
	}

	level, ok := flags[0].(*cli.StringFlag)
	if !ok {
		t.Fatalf("log-level flag has unexpected type %T", flags[0])
	}
	if level.Name != "log-level" || level.Value != "info" {
		t.Errorf("log-level defaults = (%q, %q), want (log-level, info)", level.Name, level.Value)
	}

	jsonFlag, ok := flags[1].(*cli.BoolFlag)
	if !ok {
		t.Fatalf("log-json flag has unexpected type %T", flags[1])
	}
	if jsonFlag.Name != "log-json" || jsonFlag.Value {
		t.Errorf("log-json defaults = (%q, %v), want (log-json, false)", jsonFlag.Name, jsonFlag.Value)
	}
}
