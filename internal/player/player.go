package player

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"radiohop/internal/failure"
)

// runner executes the player control binary once and returns what it
// printed. Swapped out in tests.
type runner func(name string, args ...string) (stdout string, stderr string, err error)

func runCommand(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Control drives the player through its command-line interface: one
// subcommand to report the playing title, one to start a location.
type Control struct {
	command   string
	queryArgs []string
	playArgs  []string
	run       runner
}

func NewControl(command string, queryArgs []string, playArgs []string) *Control {
	return &Control{
		command:   command,
		queryArgs: queryArgs,
		playArgs:  playArgs,
		run:       runCommand,
	}
}

// Available reports whether the control binary can be found at all.
// Checked before any other work so a missing player fails fast.
func (c *Control) Available() error {
	if _, err := exec.LookPath(c.command); err != nil {
		return failure.Wrap(failure.PlayerUnavailable, err, "player control %q not found", c.command)
	}
	return nil
}

// CurrentTitle asks the player for the title of the playing track.
// ok is false when the player answers but nothing is playing; an error
// means the control interface itself could not be reached.
func (c *Control) CurrentTitle() (title string, ok bool, err error) {
	stdout, stderr, err := c.run(c.command, c.queryArgs...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The player ran and reported "nothing playing" through
			// its exit status.
			logrus.Debugf("Player query exited: %v (%s)", err, strings.TrimSpace(stderr))
			return "", false, nil
		}
		return "", false, failure.Wrap(failure.PlayerUnavailable, err, "cannot query player %q", c.command)
	}

	title = strings.TrimSpace(stdout)
	if title == "" {
		return "", false, nil
	}
	logrus.Debugf("Player reports playing: %q", title)
	return title, true, nil
}

// Play asks the player to start the given location without raising its
// window.
func (c *Control) Play(location string) error {
	args := append(append([]string{}, c.playArgs...), location)
	logrus.Debugf("Running %s %s", c.command, strings.Join(args, " "))

	_, stderr, err := c.run(c.command, args...)
	if err != nil {
		if detail := strings.TrimSpace(stderr); detail != "" {
			return failure.Wrap(failure.PlaybackFailed, err, "player rejected %s: %s", location, detail)
		}
		return failure.Wrap(failure.PlaybackFailed, err, "player rejected %s", location)
	}
	return nil
}
