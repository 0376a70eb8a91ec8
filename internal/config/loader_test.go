package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/slotdots"
	"seehuhn.de/go/slotdots/presets"
)

func TestLoadOverridesBase(t *testing.T) {
	path := filepath.Join("testdata", "slot.yaml")
	cfg, err := Load(path, slotdots.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Slot.CornerRadius != 2 {
		t.Fatalf("expected corner radius 2, got %g", cfg.Slot.CornerRadius)
	}
	if cfg.MinCornerDots != 4 {
		t.Fatalf("expected min corner dots 4, got %d", cfg.MinCornerDots)
	}
	// untouched keys keep the base values
	if cfg.Glyph != slotdots.DefaultConfig().Glyph {
		t.Fatalf("expected default glyph, got %+v", cfg.Glyph)
	}
	if cfg.Anchor.Token != `z"/>` || cfg.Anchor.Offset != 2 {
		t.Fatalf("expected default anchor, got %+v", cfg.Anchor)
	}
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join("testdata", "preset.yaml")
	cfg, err := Load(path, slotdots.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	square, _ := presets.Get("square")
	if cfg.Slot != square.Slot || cfg.Image != square.Image {
		t.Fatalf("expected square slot, got %+v / %+v", cfg.Slot, cfg.Image)
	}
	if cfg.Glyph.Radius != 4 || cfg.Glyph.ControlNear != 2.2 || cfg.Glyph.ControlFar != 1.8 {
		t.Fatalf("expected dot override, got %+v", cfg.Glyph)
	}
}

func TestLoadAnchor(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "anchor.yaml"), slotdots.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Anchor.Token != "</g>" || cfg.Anchor.Offset != 0 {
		t.Fatalf("unexpected anchor %+v", cfg.Anchor)
	}
}

func TestLoadEmpty(t *testing.T) {
	base := presets.All["tall"]
	cfg, err := Load(filepath.Join("testdata", "empty.yaml"), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != base {
		t.Fatalf("expected base config, got %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		file string
		want string
	}{
		{"unknown_key.yaml", "depth"},
		{"invalid_geometry.yaml", "too thick"},
		{"unknown_preset.yaml", "hexagon"},
	}
	for _, c := range cases {
		path := filepath.Join("testdata", c.file)
		_, err := Load(path, slotdots.DefaultConfig())
		if err == nil {
			t.Errorf("%s: expected error", c.file)
			continue
		}
		if !errors.Is(err, slotdots.ErrInvalidConfig) {
			t.Errorf("%s: expected invalid config, got %v", c.file, err)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: expected %q in error, got %v", c.file, c.want, err)
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("%s: expected path in error, got %v", c.file, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path, slotdots.DefaultConfig())
	if !errors.Is(err, slotdots.ErrIO) {
		t.Fatalf("expected io failure, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestApplyNothing(t *testing.T) {
	base := slotdots.DefaultConfig()
	cfg, err := Apply("", base, YAMLConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != base {
		t.Fatalf("expected base config unchanged")
	}
}
