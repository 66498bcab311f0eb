package systems

import (
	"github.com/lixenwraith/berry-snake/audio"
	"github.com/lixenwraith/berry-snake/core"
	"github.com/lixenwraith/berry-snake/engine"
)

// AudioPlayer plays one sound effect without blocking
type AudioPlayer interface {
	Play(st audio.SoundType)
}

// AudioSystem maps tick outcomes to sound effects
type AudioSystem struct {
	player AudioPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player AudioPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// HandleTick plays eat on TickAte and crash on TickGameOver
func (s *AudioSystem) HandleTick(snap engine.Snapshot, result core.TickResult) {
	if s.player == nil {
		return
	}
	switch result {
	case core.TickAte:
		s.player.Play(audio.SoundEat)
	case core.TickGameOver:
		s.player.Play(audio.SoundCrash)
	}
}
