package goJWT

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "defaults valid",
			mutate:    func(*Config) {},
			wantValid: true,
		},
		{
			name: "hs512 default valid",
			mutate: func(c *Config) {
				c.DefaultAlgorithm = HS512
			},
			wantValid: true,
		},
		{
			name: "empty default algorithm invalid",
			mutate: func(c *Config) {
				c.DefaultAlgorithm = ""
			},
			wantValid: false,
		},
		{
			name: "histograms without metrics invalid",
			mutate: func(c *Config) {
				c.Metrics.EnableLatencyHistograms = true
			},
			wantValid: false,
		},
		{
			name: "histograms with metrics valid",
			mutate: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.EnableLatencyHistograms = true
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantValid && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tt.wantValid {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
			}
		})
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultAlgorithm != HS256 {
		t.Fatalf("expected HS256, got %q", cfg.DefaultAlgorithm)
	}
	if cfg.Serializer.UseNumber {
		t.Fatal("expected float64 numbers by default")
	}
	if cfg.Metrics.Enabled || cfg.Metrics.EnableLatencyHistograms {
		t.Fatal("expected metrics disabled by default")
	}
}
