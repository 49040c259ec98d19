package config

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/sentry/engine"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Decode(Embedded())
	if err != nil {
		t.Fatalf("Expected embedded config to decode, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected embedded config to equal defaults, got %+v", cfg)
	}
	if got := cfg.Settings(); got != engine.DefaultSettings() {
		t.Errorf("Expected settings %+v, got %+v", engine.DefaultSettings(), got)
	}
}

func TestDecodePartialKeepsDefaults(t *testing.T) {
	cfg, err := Decode(`
[rotation]
speed = 200.0

[turret]
position = [1.0, 2.0, 3.0]
reload_seconds = 1.25
`)
	if err != nil {
		t.Fatalf("Expected partial config to decode, got %v", err)
	}
	if cfg.Rotation.Speed != 200 {
		t.Errorf("Expected rotation speed 200, got %v", cfg.Rotation.Speed)
	}
	if cfg.Sector != Default().Sector {
		t.Errorf("Expected default sector section, got %+v", cfg.Sector)
	}

	s := cfg.Settings()
	if s.Origin.X != 1 || s.Origin.Y != 2 || s.Origin.Z != 3 {
		t.Errorf("Expected origin (1,2,3), got %+v", s.Origin)
	}
	if s.ReloadDuration != 1250*time.Millisecond {
		t.Errorf("Expected reload 1.25s, got %v", s.ReloadDuration)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		unknown bool
	}{
		{"syntax error", "[sector\nsector_angle = 10", false},
		{"wrong type", "[sector]\nsector_angle = \"wide\"", false},
		{"unknown key", "[sector]\nsector_width = 10.0", true},
		{"unknown section", "[radar]\nrange = 10.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if got := errors.Is(err, ErrUnknownKeys); got != tt.unknown {
				t.Errorf("Expected ErrUnknownKeys=%v, got %v (%v)", tt.unknown, got, err)
			}
		})
	}
}

func TestSecondsConversion(t *testing.T) {
	const def = 3 * time.Second
	tests := []struct {
		in   float64
		want time.Duration
	}{
		{0.1, 100 * time.Millisecond},
		{2, 2 * time.Second},
		{0, def},
		{-1, def},
		{math.NaN(), def},
	}
	for _, tt := range tests {
		if got := seconds(tt.in, def); got != tt.want {
			t.Errorf("seconds(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestUnusableDurationsKeepDefaults(t *testing.T) {
	cfg, err := Decode(`
[targeting]
loss_timeout_seconds = nan

[fire]
lifetime_seconds = 0.0

[turret]
reload_seconds = -2.0
`)
	if err != nil {
		t.Fatalf("Expected config to decode, got %v", err)
	}
	s := cfg.Settings()
	def := engine.DefaultSettings()
	if s.TargetLossTimeout != def.TargetLossTimeout {
		t.Errorf("Expected loss timeout %v, got %v", def.TargetLossTimeout, s.TargetLossTimeout)
	}
	if s.Lifetime != def.Lifetime || s.ReloadDuration != def.ReloadDuration {
		t.Errorf("Expected default lifetime and reload, got %v and %v", s.Lifetime, s.ReloadDuration)
	}

	turret := engine.New(s, engine.Deps{Logger: slog.New(slog.DiscardHandler)})
	if got := turret.Targeter().LossTimeout(); got != def.TargetLossTimeout {
		t.Errorf("Expected the turret to keep a %v loss grace, got %v", def.TargetLossTimeout, got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSaveAndLoadAuto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")

	s := engine.DefaultSettings()
	s.SectorAngle = 60
	s.RotationSpeed = 90
	s.AccuracyGating = false
	if err := FromSettings(s).Save(path); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	cfg, source, err := LoadAuto(path)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if source != path {
		t.Errorf("Expected source %s, got %s", path, source)
	}
	if cfg.Sector.SectorAngle != 60 || cfg.Rotation.Speed != 90 || cfg.Fire.AccuracyGating {
		t.Errorf("Expected saved values back, got %+v", cfg)
	}
}

func TestLoadAutoFallsBackToEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, source, err := LoadAuto("")
	if err != nil {
		t.Fatalf("Expected embedded load to succeed, got %v", err)
	}
	if source != "embedded" {
		t.Errorf("Expected embedded source, got %s", source)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestEncodeWritesSections(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Expected encode to succeed, got %v", err)
	}
	for _, section := range []string{"[turret]", "[sector]", "[rotation]", "[targeting]", "[fire]"} {
		if !bytes.Contains(buf.Bytes(), []byte(section)) {
			t.Errorf("Expected output to contain %s", section)
		}
	}
}
