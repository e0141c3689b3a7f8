// Package opener hands URLs off to the host OS application owning their
// scheme.
package opener

import (
	"fmt"
	"os/exec"
)

// Opener asks the host OS to open a URL. The core treats the hand-off as fire
// and forget: a nil error only means the request was issued, not that the
// target application acted on it.
type Opener interface {
	Open(url string) error
}

// Func adapts a function to the Opener interface.
type Func func(url string) error

func (f Func) Open(url string) error {
	return f(url)
}

// CommandOpener opens URLs through the platform launcher command, probing
// open (macOS), xdg-open (Linux) and powershell Start-Process (Windows).
type CommandOpener struct {
	commands [][]string
}

// NewCommandOpener creates an opener with the default launcher candidates.
func NewCommandOpener() *CommandOpener {
	return &CommandOpener{
		commands: [][]string{{"open"}, {"xdg-open"}, {"powershell", "Start-Process"}},
	}
}

// Open starts the first available launcher with the URL appended.
func (o *CommandOpener) Open(url string) error {
	for _, command := range o.commands {
		if _, err := exec.LookPath(command[0]); err != nil {
			continue
		}
		args := append(append([]string{}, command[1:]...), url)
		return exec.Command(command[0], args...).Start()
	}
	return fmt.Errorf("no URL launcher available")
}
