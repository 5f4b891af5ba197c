// Package splash animates a ring of coloured circles that rotate until told to
// go, then merge into one circle, collapse to a point and open up as a
// transparent hole the size of the view.
package splash

import (
	"log"
	"math"
	"time"

	"oddstream.games/digest/util"
)

// Phase is one stage of the splash animation.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseIdle
	PhaseMerging
	PhaseSingularity
	PhaseExpanding
)

var phaseNames = [...]string{"none", "idle", "merging", "singularity", "expanding"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// terminal reports whether p is one of the three phases of the transition.
func (p Phase) terminal() bool {
	return p >= PhaseMerging
}

// State is the animation state written by the active phase and read by Render.
type State struct {
	Phase              Phase
	RotationAngle      float64 // radians, [0, 2π)
	RotationRadius     float64 // distance of the small circles from the centre
	SingleCircleRadius float64
	HoleRadius         float64 // 0 means solid background
}

// Listener is told about the progress of the transition.
type Listener interface {
	OnStart()
	OnUpdate(fraction float64)
	OnEnd()
}

// ListenerFuncs is a Listener built from optional funcs.
type ListenerFuncs struct {
	Start  func()
	Update func(fraction float64)
	End    func()
}

func (l ListenerFuncs) OnStart() {
	if l.Start != nil {
		l.Start()
	}
}

func (l ListenerFuncs) OnUpdate(fraction float64) {
	if l.Update != nil {
		l.Update(fraction)
	}
}

func (l ListenerFuncs) OnEnd() {
	if l.End != nil {
		l.End()
	}
}

// Parent is a container the animator can remove itself from once finished.
type Parent interface {
	RemoveSplash(a *Animator)
}

// Invalidator receives redraw requests. Several requests before the next
// frame are expected to collapse into one draw.
type Invalidator interface {
	Invalidate()
}

// Option configures an Animator at construction.
type Option func(*Animator)

// WithClock sets the time source, SystemClock by default.
func WithClock(c Clock) Option {
	return func(a *Animator) { a.clock = c }
}

// WithLogger sets where diagnostics are written, log.Default() by default.
func WithLogger(l *log.Logger) Option {
	return func(a *Animator) { a.logger = l }
}

// WithInvalidator sets the redraw request target.
func WithInvalidator(inv Invalidator) Option {
	return func(a *Animator) { a.invalidator = inv }
}

// Animator drives the splash phases. It is not safe for concurrent use: the
// host calls Update, Frame, SetSize and BeginTransition from its frame loop.
type Animator struct {
	cfg         Config
	clock       Clock
	logger      *log.Logger
	parent      Parent
	invalidator Invalidator
	listener    Listener

	state      State
	viewport   Viewport
	phaseStart time.Time

	idleRunning bool
	pending     bool // merging start is posted for the next tick
	finished    bool
	completed   int // phases run to completion

	posted []func(now time.Time)
}

// New creates an Animator and configures it with cfg.
func New(cfg Config, opts ...Option) (*Animator, error) {
	a := &Animator{
		clock:  SystemClock{},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.Configure(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// Configure replaces the configuration. It fails once any phase has started.
func (a *Animator) Configure(cfg Config) error {
	if a.state.Phase != PhaseNone || a.pending {
		return ErrAlreadyStarted
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg.clone()
	a.state = State{
		RotationRadius:     a.cfg.RotationRadius,
		SingleCircleRadius: a.cfg.CircleRadius,
	}
	return nil
}

// Config returns a copy of the active configuration.
func (a *Animator) Config() Config {
	return a.cfg.clone()
}

// SetParent records the container that owns the animator.
func (a *Animator) SetParent(p Parent) {
	a.parent = p
}

// SetSize recomputes the viewport cache.
func (a *Animator) SetSize(width, height float64) {
	vp := NewViewport(width, height)
	if vp == a.viewport {
		return
	}
	a.viewport = vp
	a.invalidate()
}

// Viewport returns the cached viewport geometry.
func (a *Animator) Viewport() Viewport {
	return a.viewport
}

// State returns a snapshot of the animation state.
func (a *Animator) State() State {
	return a.state
}

// Phase returns the active phase.
func (a *Animator) Phase() Phase {
	return a.state.Phase
}

// Finished reports whether the expanding phase has completed.
func (a *Animator) Finished() bool {
	return a.finished
}

// CompletedPhases returns how many transition phases have run to completion.
func (a *Animator) CompletedPhases() int {
	return a.completed
}

// Frame returns the primitives for the current state. The first call starts
// the idle rotation if nothing else has started yet.
func (a *Animator) Frame() []Primitive {
	if a.state.Phase == PhaseNone && !a.finished {
		a.onFirstRender()
	}
	return Render(a.state, a.viewport, a.cfg)
}

func (a *Animator) onFirstRender() {
	a.enter(PhaseIdle, a.clock.Now())
}

// BeginTransition stops the idle rotation and starts the merging phase on the
// next Update. While a transition is already running the call only replaces
// the listener; the running phases are neither restarted nor re-announced.
func (a *Animator) BeginTransition(l Listener) error {
	if a.finished {
		return ErrTransitionCompleted
	}
	a.listener = l
	if a.state.Phase.terminal() || a.pending {
		return nil
	}
	if a.state.Phase == PhaseIdle {
		a.idleRunning = false
	}
	a.pending = true
	a.post(a.startTransition)
	return nil
}

func (a *Animator) post(task func(now time.Time)) {
	a.posted = append(a.posted, task)
}

func (a *Animator) startTransition(now time.Time) {
	a.pending = false
	a.enter(PhaseMerging, now)
	if a.listener != nil {
		a.listener.OnStart()
	}
}

// Update runs tasks posted during the previous tick, then samples the active
// phase at the clock's current time.
func (a *Animator) Update() {
	now := a.clock.Now()
	if len(a.posted) > 0 {
		tasks := a.posted
		a.posted = nil
		for _, task := range tasks {
			task(now)
		}
	}
	a.step(now)
}

func (a *Animator) step(now time.Time) {
	if a.finished {
		return
	}
	switch a.state.Phase {
	case PhaseIdle:
		if !a.idleRunning {
			return
		}
		period := a.cfg.RotationDuration
		elapsed := now.Sub(a.phaseStart)
		if elapsed < 0 {
			elapsed = 0
		}
		a.state.RotationAngle = 2 * math.Pi * float64(elapsed%period) / float64(period)
		a.invalidate()
	case PhaseMerging, PhaseSingularity, PhaseExpanding:
		for a.sample(now) {
		}
	}
}

// sample updates the value owned by the running transition phase. It returns
// true when the phase ran out and the next one was entered, so the caller
// samples that one at the same instant.
func (a *Animator) sample(now time.Time) bool {
	d := a.cfg.phaseDuration()
	elapsed := now.Sub(a.phaseStart)
	t := 1.0
	if d > 0 {
		t = float64(elapsed) / float64(d)
	}
	tc := util.Clamp(t, 0, 1)

	overshoot := Overshoot(OvershootTension)
	var index time.Duration
	switch a.state.Phase {
	case PhaseMerging:
		a.state.RotationRadius = reversed(overshoot, 0, a.cfg.RotationRadius)(tc)
	case PhaseSingularity:
		index = 1
		a.state.SingleCircleRadius = reversed(overshoot, 0, a.cfg.CircleRadius)(tc)
	case PhaseExpanding:
		index = 2
		a.state.HoleRadius = forward(Decelerate, 0, a.viewport.DiagonalHalf)(tc)
	}
	a.invalidate()

	// (index + t) / 3, in integer time so the value never steps back at a
	// phase boundary; t is left unclamped and a late frame reports past the end
	if a.listener != nil {
		fraction := (float64(index) + t) / 3
		if d > 0 {
			fraction = float64(index*d+elapsed) / float64(3*d)
		}
		a.listener.OnUpdate(fraction)
	}

	if elapsed < d {
		return false
	}
	return a.advance()
}

func (a *Animator) advance() bool {
	end := a.phaseStart.Add(a.cfg.phaseDuration())
	a.completed++
	switch a.state.Phase {
	case PhaseMerging:
		a.enter(PhaseSingularity, end)
		return true
	case PhaseSingularity:
		a.enter(PhaseExpanding, end)
		return true
	}
	a.finish()
	return false
}

func (a *Animator) enter(p Phase, at time.Time) {
	a.state.Phase = p
	a.phaseStart = at
	switch p {
	case PhaseIdle:
		a.idleRunning = true
		a.state.RotationAngle = 0
	case PhaseMerging:
		a.idleRunning = false
		a.state.RotationRadius = a.cfg.RotationRadius
	case PhaseSingularity:
		a.state.RotationRadius = 0
		a.state.SingleCircleRadius = a.cfg.CircleRadius
	case PhaseExpanding:
		a.state.SingleCircleRadius = 0
		a.state.HoleRadius = 0
	}
	a.invalidate()
}

// finish ends the expanding phase. Phase and listener are left as they are.
func (a *Animator) finish() {
	a.finished = true
	a.removeFromParentIfNecessary()
	if a.listener != nil {
		a.listener.OnEnd()
	}
}

func (a *Animator) removeFromParentIfNecessary() {
	if !a.cfg.RemoveFromParentOnEnd {
		return
	}
	if a.parent == nil {
		a.logger.Print(ErrNoParent)
		return
	}
	a.parent.RemoveSplash(a)
}

func (a *Animator) invalidate() {
	if a.invalidator != nil {
		a.invalidator.Invalidate()
	}
}
