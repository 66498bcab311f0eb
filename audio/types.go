// Package audio synthesizes the game's sound effects with beep
package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Berry eaten
	SoundCrash                  // Wall or self collision
	soundTypeCount
)

// String returns the key used in SFX volume configuration
func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
