package constants

import "time"

// Audio Engine Setup
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundDuration           = 180 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 150 * time.Millisecond
	EatSoundOvertoneRelease    = 80 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
)
