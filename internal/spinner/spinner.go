package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// elapsedAfter is how long a spinner runs before the elapsed time is shown
// next to the message. Sweeps routinely take minutes, so the line should
// say so.
const elapsedAfter = 10 * time.Second

// Start displays an animated spinner with the given message on w.
// Call the returned function to stop the spinner and clear the line.
func Start(w io.Writer, message string) (stop func()) {
	done := make(chan struct{})
	cleared := make(chan struct{})
	var stopOnce sync.Once
	started := time.Now()
	go func() {
		i := 0
		width := len(message) + 2
		for {
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", width)) //nolint:errcheck
				close(cleared)
				return
			case <-time.After(80 * time.Millisecond):
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], message)
				if elapsed := time.Since(started); elapsed >= elapsedAfter {
					line += fmt.Sprintf(" (%ds)", int(elapsed.Seconds()))
				}
				if len(line) > width {
					width = len(line)
				}
				fmt.Fprintf(w, "\r%s", line) //nolint:errcheck
				i++
			}
		}
	}()
	return func() {
		stopOnce.Do(func() {
			close(done)
		})
		<-cleared
	}
}
