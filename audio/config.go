package audio

import (
	"encoding/json"
	"strconv"

	"github.com/lixenwraith/berry-snake/constants"
)

// AudioConfig controls playback and per-effect loudness
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEat:   1.0,
			SoundCrash: 0.8,
		},
	}
}

// LoadAudioConfig applies BERRY_SNAKE_* audio variables from getenv over the defaults
// Malformed values are ignored
func LoadAudioConfig(getenv func(string) string) *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := getenv("BERRY_SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100
	if volume := getenv("BERRY_SNAKE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.SetMasterVolume(val)
		}
	}

	// {"eat":1.0,"crash":0.5}
	if effectVols := getenv("BERRY_SNAKE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := getenv("BERRY_SNAKE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// SetMasterVolume sets the master volume from a 0-100 percentage, clamped
func (c *AudioConfig) SetMasterVolume(percent int) {
	c.MasterVolume = float64(percent) / 100.0
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
}

// volumeFor combines master and effect volume
func (c *AudioConfig) volumeFor(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
