package execution

import (
	"context"

	"gtt/internal/events"
	"gtt/internal/lifecycle"
)

// Executor executes tests and streams their lifecycle to a listener
type Executor interface {
	Run(ctx context.Context, packages []string, args []string, listener lifecycle.Listener) (events.Summary, error)
}
