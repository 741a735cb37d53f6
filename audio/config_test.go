package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	expectedVolumes := map[SoundType]float64{
		SoundError: 0.8,
		SoundRev:   0.7,
		SoundChime: 0.5,
	}
	for soundType, expectedVol := range expectedVolumes {
		if vol, ok := cfg.EffectVolumes[soundType]; !ok {
			t.Errorf("Expected volume for sound %s to be set", soundType)
		} else if vol != expectedVol {
			t.Errorf("Expected volume %f for sound %s, got %f", expectedVol, soundType, vol)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSFXVolumes, "")
	t.Setenv(EnvSampleRate, "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

// TestLoadAudioConfigEnabled verifies loading enabled flag
func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, tc.value)
			cfg := LoadAudioConfig()

			if cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigMasterVolume verifies loading and clamping master volume
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"100", 1.0},
		{"75", 0.75},
		{"-10", 0.0},
		{"150", 1.0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(EnvMasterVolume, tc.value)
			cfg := LoadAudioConfig()

			if cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigEffectVolumes verifies JSON effect volumes
func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv(EnvSFXVolumes, `{"error":0.25,"rev":2,"bogus":0.1}`)
	cfg := LoadAudioConfig()

	if cfg.EffectVolumes[SoundError] != 0.25 {
		t.Errorf("Expected error volume 0.25, got %f", cfg.EffectVolumes[SoundError])
	}
	if cfg.EffectVolumes[SoundRev] != 1.0 {
		t.Errorf("Expected rev volume clamped to 1.0, got %f", cfg.EffectVolumes[SoundRev])
	}
	if cfg.EffectVolumes[SoundChime] != 0.5 {
		t.Errorf("Expected chime volume unchanged at 0.5, got %f", cfg.EffectVolumes[SoundChime])
	}

	t.Setenv(EnvSFXVolumes, `{not json`)
	cfg = LoadAudioConfig()
	if cfg.EffectVolumes[SoundError] != 0.8 {
		t.Errorf("Expected malformed JSON to keep defaults, got %f", cfg.EffectVolumes[SoundError])
	}
}

// TestLoadAudioConfigSampleRate verifies sample rate parsing
func TestLoadAudioConfigSampleRate(t *testing.T) {
	t.Setenv(EnvSampleRate, "48000")
	if got := LoadAudioConfig().SampleRate; got != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", got)
	}

	t.Setenv(EnvSampleRate, "-1")
	if got := LoadAudioConfig().SampleRate; got != 44100 {
		t.Errorf("Expected invalid sample rate to keep 44100, got %d", got)
	}
}
