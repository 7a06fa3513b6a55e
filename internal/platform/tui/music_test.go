package tui

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep/effects"
)

func TestMusicWithoutTrack(t *testing.T) {
	m := NewMusic(t.TempDir())
	if err := m.Play(1); !errors.Is(err, ErrNoTrack) {
		t.Errorf("Play() error = %v, expected ErrNoTrack", err)
	}
	m.Stop()
	m.Close()
}

func TestMusicMissingFile(t *testing.T) {
	m := NewMusic(t.TempDir())
	m.SetTrack("missing.ogg")
	if err := m.Play(1); err == nil {
		t.Error("Play() error = nil, expected open failure")
	}
}

func TestSetVolume(t *testing.T) {
	tests := []struct {
		name   string
		linear float64
		silent bool
		volume float64
	}{
		{"full", 1, false, 0},
		{"half", 0.5, false, -1},
		{"quarter", 0.25, false, -2},
		{"above full", 3, false, 0},
		{"zero", 0, true, 0},
		{"negative", -1, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &effects.Volume{Base: 2}
			setVolume(v, tt.linear)
			if v.Silent != tt.silent {
				t.Errorf("setVolume(%v) silent = %v, expected %v", tt.linear, v.Silent, tt.silent)
			}
			if !tt.silent && math.Abs(v.Volume-tt.volume) > 1e-9 {
				t.Errorf("setVolume(%v) volume = %v, expected %v", tt.linear, v.Volume, tt.volume)
			}
		})
	}
}
