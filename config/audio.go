package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundSelect
	SoundBack
	SoundUpDown
	SoundLeftRight
	SoundError
)

// ToneConfig describes the synthesized fallback for a cue
type ToneConfig struct {
	Frequency float64 // Hz
	Duration  int     // milliseconds
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	DefaultVol float64
}

// SoundConfig maps sound IDs to files and fallback tones
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	Tones             map[SoundID]ToneConfig
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		DefaultVol: 0.6,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundSelect:    "select.wav",
			SoundBack:      "back.wav",
			SoundUpDown:    "nav_up_down.wav",
			SoundLeftRight: "nav_left_right.wav",
			SoundError:     "error.ogg",
		},
		Tones: map[SoundID]ToneConfig{
			SoundSelect:    {Frequency: 880, Duration: 70},
			SoundBack:      {Frequency: 440, Duration: 70},
			SoundUpDown:    {Frequency: 660, Duration: 35},
			SoundLeftRight: {Frequency: 740, Duration: 35},
			SoundError:     {Frequency: 180, Duration: 140},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundError: 1.5,
		},
	}
}
