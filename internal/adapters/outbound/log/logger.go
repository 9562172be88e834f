package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger registers the shared *log.Logger every component resolves.
type InitLogger struct{}

// Initialize registers the logger in the dependency container. Plain stdout
// logging; structured telemetry goes through OTel, not the log stream.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(log.New(os.Stdout, "", log.Lmsgprefix))
	return ctx, nil
}
