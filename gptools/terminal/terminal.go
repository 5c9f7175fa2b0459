package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Console prints user facing messages. Colors and spinners are only used
// when the output is a terminal.
type Console struct {
	w   io.Writer
	tty bool
}

// New creates a console writing to the given file
func New(f *os.File) *Console {
	return &Console{
		w:   f,
		tty: terminal.IsTerminal(int(f.Fd())),
	}
}

// NewWriter creates a console writing plain text to w
func NewWriter(w io.Writer) *Console {
	return &Console{w: w}
}

// Error print error
func (c *Console) Error(err error, format string, a ...interface{}) {
	var message = fmt.Sprintf(format, a...)
	if err != nil {
		message = fmt.Sprintf("%s [%s]", message, err)
	}
	c.println(red, message)
}

// Info print an informational message
func (c *Console) Info(format string, a ...interface{}) {
	c.println(cyan, fmt.Sprintf(format, a...))
}

func (c *Console) println(color string, message string) {
	if !c.tty {
		fmt.Fprintln(c.w, message)
		return
	}
	fmt.Fprintf(c.w, "%s%s%s\n", color, message, reset)
}
