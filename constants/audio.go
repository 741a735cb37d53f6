package constants

import "time"

// Error Sound Timing
const (
	ErrorSoundDuration = 150 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 40 * time.Millisecond
)

// Rev Sound Timing (car destroyed)
const (
	RevSoundDuration = 450 * time.Millisecond
	RevSoundAttack   = 20 * time.Millisecond
	RevSoundRelease  = 200 * time.Millisecond
)

// Level Up Chime Timing
const (
	ChimeSoundAttack        = 5 * time.Millisecond
	ChimeSoundNote1Duration = 120 * time.Millisecond
	ChimeSoundNote1Release  = 60 * time.Millisecond
	ChimeSoundNote2Duration = 360 * time.Millisecond
	ChimeSoundNote2Release  = 300 * time.Millisecond
)

// SpeakerBufferDuration is the speaker buffer handed to beep
const SpeakerBufferDuration = 100 * time.Millisecond
