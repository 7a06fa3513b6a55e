package tui

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
)

const sampleRate = beep.SampleRate(48000)

// ErrNoTrack is returned by Play before a track is set.
var ErrNoTrack = errors.New("tui: no music track")

// Music loops an Ogg Vorbis track through the system speaker while the
// terminal frontend runs. It implements game.Music.
type Music struct {
	mu     sync.Mutex
	root   string
	track  string
	init   bool
	stream beep.StreamSeekCloser
	volume *effects.Volume
	ctrl   *beep.Ctrl
}

// NewMusic creates a player for tracks relative to root.
func NewMusic(root string) *Music {
	return &Music{root: root}
}

// SetTrack selects the track for the next Play.
func (m *Music) SetTrack(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path == m.track {
		return
	}
	m.track = path
	m.closeStream()
}

// Play starts or resumes the track at a linear volume in [0, 1].
func (m *Music) Play(volume float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.track == "" {
		return ErrNoTrack
	}
	if m.ctrl == nil {
		if err := m.open(); err != nil {
			return err
		}
	}

	speaker.Lock()
	setVolume(m.volume, volume)
	m.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Stop pauses the track.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
}

// Close stops playback and releases the decoder.
func (m *Music) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeStream()
}

func (m *Music) open() error {
	path := m.track
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.root, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tui: open music: %w", err)
	}
	stream, format, err := vorbis.Decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("tui: decode music %s: %w", path, err)
	}

	if !m.init {
		if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			_ = stream.Close()
			return fmt.Errorf("tui: audio device: %w", err)
		}
		m.init = true
	}

	var loop beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		loop = beep.Resample(4, format.SampleRate, sampleRate, loop)
	}
	m.stream = stream
	m.volume = &effects.Volume{Streamer: loop, Base: 2}
	m.ctrl = &beep.Ctrl{Streamer: m.volume, Paused: true}
	speaker.Play(m.ctrl)
	return nil
}

func (m *Music) closeStream() {
	if m.ctrl == nil {
		return
	}
	speaker.Clear()
	_ = m.stream.Close()
	m.stream, m.volume, m.ctrl = nil, nil, nil
}

// setVolume maps a linear volume onto the exponential volume effect.
func setVolume(v *effects.Volume, linear float64) {
	if linear <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(math.Min(linear, 1))
}
