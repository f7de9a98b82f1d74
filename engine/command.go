package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/runegrid/runegrid/core"
)

// maxTriggerDepth caps depth-first event nesting. A system that keeps
// retriggering its own event chain would otherwise recurse without bound;
// crossing the cap is treated as an unrecoverable fault.
const maxTriggerDepth = 64

// Command is a deferred structural mutation. Commands are never applied
// synchronously: they buffer in issuance order and apply as one FIFO batch
// after every system registered to the current event has run.
type Command interface {
	isCommand()
}

// AddEntityCommand commits a reserved entity with its initial components.
type AddEntityCommand struct {
	Entity     core.Entity
	Components []core.Component
}

// DestroyEntityCommand removes an entity and everything attached to it.
type DestroyEntityCommand struct {
	Entity core.Entity
}

// AddComponentCommand attaches a component to a live entity.
type AddComponentCommand struct {
	Entity    core.Entity
	Component core.Component
}

// RemoveComponentCommand detaches a component kind from an entity.
type RemoveComponentCommand struct {
	Entity core.Entity
	Kind   core.Kind
}

// TriggerCommand fires a named event depth-first during batch application.
type TriggerCommand struct {
	Event string
}

// QuitCommand halts the frame loop once the current batch finishes applying.
type QuitCommand struct{}

func (AddEntityCommand) isCommand()       {}
func (DestroyEntityCommand) isCommand()   {}
func (AddComponentCommand) isCommand()    {}
func (RemoveComponentCommand) isCommand() {}
func (TriggerCommand) isCommand()         {}
func (QuitCommand) isCommand()            {}

// Commands buffers deferred mutations issued by system code and applies them
// in one ordered batch per event firing.
type Commands struct {
	world *World
	log   *zap.Logger

	buf       []Command
	fireDepth int
	quit      bool
}

func newCommands(w *World, log *zap.Logger) *Commands {
	if log == nil {
		log = zap.NewNop()
	}
	return &Commands{world: w, log: log}
}

// Issue appends a command to the current buffer.
func (c *Commands) Issue(cmd Command) {
	c.buf = append(c.buf, cmd)
}

// AddEntity issues entity creation and returns the id the entity will have.
// The id is reserved immediately so later commands in the same batch can
// reference it, but the entity is live only once the batch applies.
func (c *Commands) AddEntity(components ...core.Component) core.Entity {
	id := c.world.reserveEntityID()
	c.Issue(AddEntityCommand{Entity: id, Components: components})
	return id
}

// DestroyEntity issues entity destruction.
func (c *Commands) DestroyEntity(id core.Entity) {
	c.Issue(DestroyEntityCommand{Entity: id})
}

// AddComponent issues a component attachment.
func (c *Commands) AddComponent(id core.Entity, component core.Component) {
	c.Issue(AddComponentCommand{Entity: id, Component: component})
}

// RemoveComponent issues a component detachment by kind.
func (c *Commands) RemoveComponent(id core.Entity, k core.Kind) {
	c.Issue(RemoveComponentCommand{Entity: id, Kind: k})
}

// Trigger issues a named event firing, processed depth-first when the batch
// applies.
func (c *Commands) Trigger(event string) {
	c.Issue(TriggerCommand{Event: event})
}

// Quit issues a loop halt. The current batch still finishes applying.
func (c *Commands) Quit() {
	c.Issue(QuitCommand{})
}

// Pending returns the number of buffered commands.
func (c *Commands) Pending() int {
	return len(c.buf)
}

// QuitRequested reports whether a Quit command has been applied.
func (c *Commands) QuitRequested() bool {
	return c.quit
}

// apply drains the buffer in FIFO order against the world. A TriggerCommand
// fires the named event's systems immediately; commands they issue land in a
// fresh buffer that applies once those systems finish, so nesting resolves
// depth-first. Within one batch no command observes a later command's effect.
func (c *Commands) apply(s *Scheduler, ctx *Context) {
	batch := c.buf
	c.buf = nil

	for _, cmd := range batch {
		switch cmd := cmd.(type) {
		case AddEntityCommand:
			c.world.addEntity(cmd.Entity, cmd.Components)
		case DestroyEntityCommand:
			c.world.destroyEntity(cmd.Entity)
		case AddComponentCommand:
			c.world.addComponent(cmd.Entity, cmd.Component)
		case RemoveComponentCommand:
			c.world.removeComponent(cmd.Entity, cmd.Kind)
		case TriggerCommand:
			s.Fire(cmd.Event, ctx)
		case QuitCommand:
			c.quit = true
		default:
			panic(fmt.Sprintf("engine: unknown command type %T", cmd))
		}
	}
}

// enterFire tracks event-firing depth for the trigger recursion cap.
func (c *Commands) enterFire(event string) {
	c.fireDepth++
	if c.fireDepth > maxTriggerDepth {
		panic(fmt.Sprintf("engine: event trigger depth exceeded %d firing %q; trigger cycle suspected",
			maxTriggerDepth, event))
	}
}

func (c *Commands) leaveFire() {
	c.fireDepth--
}
