package terminal

import (
	"fmt"
	"time"
)

const spinner = `|/-\`

// Operation represents a long running operation
type Operation struct {
	console *Console
	stop    chan struct{}
	done    chan struct{}
}

// NewOperation starts a long running operation
func (c *Console) NewOperation(format string, a ...interface{}) *Operation {
	o := &Operation{
		console: c,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if !c.tty {
		close(o.done)
		return o
	}

	message := fmt.Sprintf(format, a...)
	spinFrames := []rune(spinner)
	spinFramesSize := len(spinFrames)

	go func() {
		defer close(o.done)
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		pos := 0

	L:
		for {
			select {
			case <-o.stop:
				break L
			case <-ticker.C:
				fmt.Fprintf(c.w, "\r  %s%s%s %s ", yellow, message, reset, string(spinFrames[pos%spinFramesSize]))
				pos++
			}
		}
	}()

	return o
}

// Success informs that the operation is over
func (o *Operation) Success(format string, a ...interface{}) {
	o.finished("✓", green, fmt.Sprintf(format, a...))
}

// Error informs that the operation failed
func (o *Operation) Error(err error, format string, a ...interface{}) {
	var message = fmt.Sprintf(format, a...)
	if err != nil {
		message = fmt.Sprintf("%s [%s]", message, err)
	}
	o.finished("✗", red, message)
}

func (o *Operation) finished(symbol string, color string, message string) {
	close(o.stop)
	<-o.done

	c := o.console
	if !c.tty {
		fmt.Fprintf(c.w, "%s %s\n", symbol, message)
		return
	}
	fmt.Fprintf(c.w, "\033[2K")
	fmt.Fprintf(c.w, "\r%s %s%s%s \n", symbol, color, message, reset)
}
