package main

import (
	"log/slog"
	"os"

	"github.com/ringlab/ring"
	"github.com/ringlab/ring/plugin/pslog"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	// Capacity overflows are reported through the logger before the deque panics.
	d := ring.Must[string](&ring.Options{
		Logger: pslog.New(logger, pslog.WithAttrs(slog.String("deque", "jobs"))),
	})

	d.AddLast("build")
	d.AddLast("test")
	d.AddFirst("checkout")

	for job := range d.All() {
		logger.Info("queued", slog.String("job", job))
	}
}
