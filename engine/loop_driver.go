package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/berry-snake/constants"
	"github.com/lixenwraith/berry-snake/core"
	"github.com/lixenwraith/berry-snake/status"
)

// Interval returns the tick interval for a tier, unknown tiers run at Hard speed
func Interval(d core.Difficulty) time.Duration {
	switch d {
	case core.DifficultyEasy:
		return constants.EasyTickInterval
	case core.DifficultyMedium:
		return constants.MediumTickInterval
	default:
		return constants.HardTickInterval
	}
}

type controlKind uint8

const (
	controlRestart controlKind = iota
	controlDifficulty
)

type controlRequest struct {
	kind       controlKind
	difficulty core.Difficulty
	done       chan struct{}
}

// LoopDriver runs GameState ticks at the difficulty cadence
// A single scheduler goroutine owns every tick and reset; control calls are marshalled onto it
// so a pending tick is always cancelled before the state is reset
type LoopDriver struct {
	mu           sync.Mutex
	state        *GameState
	difficulty   core.Difficulty
	episode      uint64
	overNotified bool
	handlers     handlerSet

	// Latest queued heading, consumed at the start of the next tick
	pending atomic.Int32

	// Control channels
	controlChan chan controlRequest
	stopChan    chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	running     atomic.Bool

	log zerolog.Logger

	// Cached metric pointers, nil when no registry is attached
	statTicks    *atomic.Int64
	statEpisodes *atomic.Int64
	statEaten    *atomic.Int64
}

// DriverOption configures a LoopDriver
type DriverOption func(*LoopDriver)

// WithLogger attaches a structured logger
func WithLogger(l zerolog.Logger) DriverOption {
	return func(d *LoopDriver) { d.log = l }
}

// WithRegistry publishes tick/episode/eaten counters to reg
func WithRegistry(reg *status.Registry) DriverOption {
	return func(d *LoopDriver) {
		d.statTicks = reg.Ints.Get(status.KeyTicks)
		d.statEpisodes = reg.Ints.Get(status.KeyEpisodes)
		d.statEaten = reg.Ints.Get(status.KeyEaten)
	}
}

// NewLoopDriver creates a stopped driver around state; the current state counts as episode 1
func NewLoopDriver(state *GameState, difficulty core.Difficulty, opts ...DriverOption) *LoopDriver {
	d := &LoopDriver{
		state:       state,
		difficulty:  difficulty.Normalize(),
		episode:     1,
		controlChan: make(chan controlRequest),
		stopChan:    make(chan struct{}),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.statEpisodes != nil {
		d.statEpisodes.Store(1)
	}
	return d
}

// RegisterHandler adds a TickHandler, GameOverHandler and/or ResetHandler
// Must be called before Start(); returns false if h implements none of them
func (d *LoopDriver) RegisterHandler(h any) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handlers.register(h)
}

// Start begins the scheduler loop
func (d *LoopDriver) Start() {
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		core.Go(d.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (d *LoopDriver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
		if d.running.CompareAndSwap(true, false) {
			d.wg.Wait()
		}
	})
}

// Running reports whether the scheduler goroutine is active
func (d *LoopDriver) Running() bool {
	return d.running.Load()
}

// QueueDirection records the heading to apply before the next tick
// Only the latest value survives; reversal is rejected by GameState when applied
func (d *LoopDriver) QueueDirection(dir core.Direction) {
	if !dir.Valid() {
		return
	}
	d.pending.Store(int32(dir))
}

// Restart cancels the pending tick, resets the state and reschedules at the current interval
func (d *LoopDriver) Restart() {
	d.control(controlRequest{kind: controlRestart})
}

// SetDifficulty restarts the episode at the interval of the new tier, unknown tiers map to Hard
func (d *LoopDriver) SetDifficulty(diff core.Difficulty) {
	d.control(controlRequest{kind: controlDifficulty, difficulty: diff.Normalize()})
}

// Difficulty returns the active tier
func (d *LoopDriver) Difficulty() core.Difficulty {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.difficulty
}

// Interval returns the tick interval of the active tier
func (d *LoopDriver) Interval() time.Duration {
	return Interval(d.Difficulty())
}

// Snapshot returns a copy of the live state
func (d *LoopDriver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return snapshot(d.state, d.difficulty, d.episode)
}

// Step runs one tick synchronously: apply pending heading, tick, notify handlers
// No-op returning TickGameOver once the episode has ended
func (d *LoopDriver) Step() core.TickResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.IsOver() {
		return core.TickGameOver
	}

	if dir := core.Direction(d.pending.Swap(int32(core.DirNone))); dir != core.DirNone {
		d.state.SetDirection(dir)
	}

	result := d.state.Tick()
	snap := snapshot(d.state, d.difficulty, d.episode)

	if d.statTicks != nil {
		d.statTicks.Add(1)
		if result == core.TickAte {
			d.statEaten.Add(1)
		}
	}

	d.handlers.dispatchTick(snap, result)

	if result == core.TickGameOver && !d.overNotified {
		d.overNotified = true
		d.log.Info().
			Uint64("episode", snap.Episode).
			Str("difficulty", snap.Difficulty.Key()).
			Int("score", snap.Score).
			Int("length", len(snap.Snake)).
			Msg("episode over")
		d.handlers.dispatchGameOver(snap)
	}

	return result
}

// control runs req on the scheduler goroutine when running, inline otherwise
func (d *LoopDriver) control(req controlRequest) {
	if d.running.Load() {
		req.done = make(chan struct{})
		select {
		case d.controlChan <- req:
			<-req.done
			return
		case <-d.stopChan:
		}
	}
	d.apply(req)
}

// apply resets the episode; caller guarantees no tick is pending
func (d *LoopDriver) apply(req controlRequest) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if req.kind == controlDifficulty {
		d.difficulty = req.difficulty
	}

	d.state.Reset()
	d.pending.Store(int32(core.DirNone))
	d.episode++
	d.overNotified = false

	if d.statEpisodes != nil {
		d.statEpisodes.Add(1)
	}

	d.log.Debug().
		Uint64("episode", d.episode).
		Str("difficulty", d.difficulty.Key()).
		Dur("interval", Interval(d.difficulty)).
		Msg("episode reset")

	d.handlers.dispatchReset(snapshot(d.state, d.difficulty, d.episode))
}

// schedulerLoop owns the tick timer; a timer is re-armed only while the episode is running
func (d *LoopDriver) schedulerLoop() {
	defer d.wg.Done()

	interval := d.Interval()
	deadline := time.Now().Add(interval)
	timer := time.NewTimer(interval)
	defer timer.Stop()
	armed := true

	for {
		select {
		case <-d.stopChan:
			return

		case req := <-d.controlChan:
			// Cancel the outstanding tick before any reset mutation
			if armed && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			d.apply(req)

			interval = d.Interval()
			deadline = time.Now().Add(interval)
			timer.Reset(interval)
			armed = true
			close(req.done)

		case <-timer.C:
			armed = false
			if d.Step() == core.TickGameOver {
				// Wait for restart or stop
				continue
			}

			deadline = deadline.Add(interval)
			now := time.Now()
			// Drift correction: resync if more than two intervals behind
			if now.Sub(deadline) > interval*2 {
				deadline = now.Add(interval)
			}
			wait := deadline.Sub(now)
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
			armed = true
		}
	}
}
