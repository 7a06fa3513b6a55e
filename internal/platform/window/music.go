package window

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const sampleRate = 48000

// ErrNoTrack is returned by Play before a track is set.
var ErrNoTrack = errors.New("window: no music track")

// Music loops an Ogg Vorbis track. It implements game.Music.
type Music struct {
	ctx    *audio.Context
	root   string
	track  string
	player *audio.Player
}

// NewMusic creates a player for tracks relative to root. Ebiten allows
// one audio context per process.
func NewMusic(root string) *Music {
	return &Music{ctx: audio.NewContext(sampleRate), root: root}
}

// SetTrack selects the track to play. A playing track keeps playing until
// the next Play.
func (m *Music) SetTrack(path string) {
	if path == m.track {
		return
	}
	m.track = path
	if m.player != nil {
		m.player.Pause()
		_ = m.player.Close()
		m.player = nil
	}
}

// Play starts or resumes the track at the given volume.
func (m *Music) Play(volume float64) error {
	if m.track == "" {
		return ErrNoTrack
	}
	if m.player == nil {
		p, err := m.open()
		if err != nil {
			return err
		}
		m.player = p
	}
	m.player.SetVolume(volume)
	if !m.player.IsPlaying() {
		m.player.Play()
	}
	return nil
}

// Stop pauses the track.
func (m *Music) Stop() {
	if m.player != nil {
		m.player.Pause()
	}
}

func (m *Music) open() (*audio.Player, error) {
	path := m.track
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: read music: %w", err)
	}
	stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: decode music %s: %w", path, err)
	}
	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("window: music player: %w", err)
	}
	return p, nil
}
