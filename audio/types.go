package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundError SoundType = iota // Mistyped buffer buzz
	SoundRev                    // Car destroyed, engine rev
	SoundChime                  // Level up
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundError: "error",
	SoundRev:   "rev",
	SoundChime: "chime",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// AudioConfig holds volume and device settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundError: 0.8,
			SoundRev:   0.7,
			SoundChime: 0.5,
		},
		SampleRate: 44100,
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
