package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/overlaymenu/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of sound cues. Cues come from a
// sound directory when one is given and the file exists, otherwise they are
// synthesized from the configured tone.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Decoded 16-bit stereo PCM
	context  *audio.Context
	sounds   fs.FS
}

// NewAudioLoader creates a loader. sounds may be nil.
func NewAudioLoader(ctx *audio.Context, sounds fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
		sounds:   sounds,
	}
}

// PreloadSFX decodes a cue and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.decoded(id)
	return err
}

// LoadSFX returns a new player for a cue.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.decoded(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(data), nil
}

func (l *AudioLoader) decoded(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	var data []byte
	if path, ok := cfg.Sound.SFXPaths[id]; ok && l.sounds != nil {
		if raw, err := fs.ReadFile(l.sounds, path); err == nil {
			data, err = l.decode(path, raw)
			if err != nil {
				return nil, err
			}
		}
	}
	if data == nil {
		tone, ok := cfg.Sound.Tones[id]
		if !ok {
			return nil, fmt.Errorf("no sound for cue %d", id)
		}
		data = SynthesizeTone(l.context.SampleRate(), tone)
	}

	l.sfxCache[id] = data
	return data, nil
}

// decode converts a wav or ogg file to PCM at the context sample rate.
func (l *AudioLoader) decode(path string, raw []byte) ([]byte, error) {
	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}

// SynthesizeTone renders a sine beep as 16-bit little endian stereo PCM with a
// linear fade out.
func SynthesizeTone(sampleRate int, tone cfg.ToneConfig) []byte {
	n := sampleRate * tone.Duration / 1000
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*tone.Frequency*float64(i)/float64(sampleRate)) * env * 0.3
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
