package engine

import (
	"go.uber.org/zap"
)

// Reserved event names driven by the loop. Any other name is a free-form
// identifier usable with Commands.Trigger.
const (
	// EventInit fires exactly once before the loop enters Running.
	EventInit = "init"
	// EventAfterInit fires once EventInit's commands have applied and before
	// the first update.
	EventAfterInit = "after_init"
	// EventBeforeUpdate fires at the start of every Running iteration.
	EventBeforeUpdate = "before_update"
	// EventUpdate is the main per-frame hook.
	EventUpdate = "update"
	// EventAfterUpdate fires after EventUpdate, before the frame renders.
	EventAfterUpdate = "after_update"
	// EventCleanup fires once after a normal Quit; it is skipped on faults.
	EventCleanup = "cleanup"
)

// Context carries the per-firing collaborators a system works with.
type Context struct {
	World    *World
	Commands *Commands
	Log      *zap.Logger
}

// SystemFunc is a system's handler. results holds one Results per query the
// system declared, in declaration order, evaluated fresh when the system
// starts.
type SystemFunc func(ctx *Context, results []Results)

// System is logic bound to an ordered list of queries and exactly one event.
type System struct {
	// Name identifies the system in logs. Optional.
	Name string
	// Queries are evaluated against current world state immediately before
	// Run is called.
	Queries []Query
	// Run receives the evaluated query results.
	Run SystemFunc
}

// Registration pairs a system with the event it runs on, so a feature can
// hand the scheduler all of its systems in one bundle.
type Registration struct {
	Event  string
	System System
}

// SystemsGenerator yields a feature's complete, ordered system registrations.
type SystemsGenerator interface {
	Generate() []Registration
}

// Scheduler owns the named event hooks. Each event holds an ordered list of
// systems fired in registration order, each run to completion before the next
// starts.
type Scheduler struct {
	events map[string][]System
	log    *zap.Logger
}

// NewScheduler creates an empty scheduler. A nil logger defaults to no-op.
func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		events: make(map[string][]System),
		log:    log,
	}
}

// Register appends a system to the named event's firing order.
func (s *Scheduler) Register(event string, sys System) {
	s.events[event] = append(s.events[event], sys)
}

// RegisterAll registers every system a generator yields, preserving order.
func (s *Scheduler) RegisterAll(g SystemsGenerator) {
	for _, reg := range g.Generate() {
		s.Register(reg.Event, reg.System)
	}
}

// SystemCount returns how many systems are registered to the named event.
func (s *Scheduler) SystemCount(event string) int {
	return len(s.events[event])
}

// Fire runs every system registered to the named event in order, then applies
// the commands they issued as one batch. Each system observes world state as
// of its own start: earlier systems' in-place component mutations are
// visible, not-yet-applied commands are not.
//
// Triggered events nest depth-first through the command batch; exceeding the
// trigger depth cap is a fault and panics.
func (s *Scheduler) Fire(event string, ctx *Context) {
	ctx.Commands.enterFire(event)
	defer ctx.Commands.leaveFire()

	for _, sys := range s.events[event] {
		if sys.Run == nil {
			continue
		}
		results := make([]Results, len(sys.Queries))
		for i, q := range sys.Queries {
			results[i] = ctx.World.Evaluate(q)
		}
		sys.Run(ctx, results)
	}

	ctx.Commands.apply(s, ctx)
}
