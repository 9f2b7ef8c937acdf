package cli

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/ekuinox/find-track-by-color/internal/progress"
)

// startProgress renders the counter to stderr while work is running,
// but only when stderr is a terminal. The returned stop function waits
// for the final render. Rendering is purely cosmetic; the pipeline
// never depends on it.
func startProgress(label string, counter *progress.Counter) (stop func()) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				fmt.Fprintf(os.Stderr, "\r%s %s\n", label, counter)
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stderr, "\r%s %s", label, counter)
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}
