package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/word-traffic/constants"
	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/events"
	"github.com/rs/zerolog"
)

// SoundManager plays the feedback cues for game events
// Playback failures never reach the game: an uninitialized manager is silent
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	logger      zerolog.Logger

	// Per-type play counter, counts requests even while silent
	played [soundTypeCount]atomic.Int64
}

// NewSoundManager creates a new sound manager; a nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, logger zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info().Int("sample_rate", sm.cfg.SampleRate).Float64("master_volume", sm.cfg.MasterVolume).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Play queues a sound effect
func (sm *SoundManager) Play(st SoundType) {
	if st < 0 || st >= soundTypeCount {
		return
	}
	sm.played[st].Add(1)

	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayError plays the short error buzz
func (sm *SoundManager) PlayError() { sm.Play(SoundError) }

// PlaySuccess plays the engine rev of a destroyed car
func (sm *SoundManager) PlaySuccess() { sm.Play(SoundRev) }

// PlayLevelUp plays the level-up chime
func (sm *SoundManager) PlayLevelUp() { sm.Play(SoundChime) }

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			sm.logger.Debug().Bool("muted", !old).Msg("mute toggled")
			return !old
		}
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is running
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns how many times st was requested
func (sm *SoundManager) Played(st SoundType) int64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st].Load()
}

// soundFor maps a game event to its cue
func soundFor(t events.EventType) (SoundType, bool) {
	switch t {
	case events.EventInputError:
		return SoundError, true
	case events.EventInputSuccess:
		return SoundRev, true
	case events.EventLevelUp:
		return SoundChime, true
	default:
		return 0, false
	}
}

// HandleEvent plays the cue for a routed event
func (sm *SoundManager) HandleEvent(_ *engine.Snapshot, ev events.GameEvent) {
	if st, ok := soundFor(ev.Type); ok {
		sm.Play(st)
	}
}

// EventTypes returns the events that have a cue
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventInputError,
		events.EventInputSuccess,
		events.EventLevelUp,
	}
}
