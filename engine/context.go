package engine

import "go.uber.org/zap"

// NewContext builds a standalone context over the world with a fresh command
// queue. The game loop builds its own context; this constructor serves tests
// and embedders driving the scheduler directly.
func NewContext(w *World, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		World:    w,
		Commands: newCommands(w, log),
		Log:      log,
	}
}
