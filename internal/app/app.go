package app

import (
	"strings"

	"github.com/sirupsen/logrus"

	"radiohop/internal/app/config"
	"radiohop/internal/failure"
	"radiohop/internal/player"
	"radiohop/internal/registry"
	"radiohop/internal/selector"
	"radiohop/internal/station"
)

type Command int

const (
	CommandNext Command = iota
	CommandPrevious
	CommandRandom
)

func (c Command) String() string {
	switch c {
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandRandom:
		return "random"
	}
	return "unknown"
}

// ParseCommand maps a CLI token to a Command. Matching is
// case-insensitive on the first letter, so "n", "NEXT" and "neeext"
// all mean next.
func ParseCommand(token string) (Command, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	switch {
	case strings.HasPrefix(t, "n"):
		return CommandNext, nil
	case strings.HasPrefix(t, "p"):
		return CommandPrevious, nil
	case strings.HasPrefix(t, "r"):
		return CommandRandom, nil
	}
	return 0, failure.New(failure.UnknownCommand, "%q is not a radiohop command", token)
}

// App wires the registry reader, the player control and the selector
// into the single switch operation.
type App struct {
	param   *config.Param
	control *player.Control
}

func New(param *config.Param) *App {
	return &App{
		param:   param,
		control: player.NewControl(param.Player.Command, param.Player.QueryArgs, param.Player.PlayArgs),
	}
}

// Run performs one station switch: load the registry, locate whatever
// is playing, pick the station the command asks for and hand it to the
// player. The player check runs first so a missing control interface
// fails before any other work.
func (a *App) Run(cmd Command, floor int) error {
	if err := a.control.Available(); err != nil {
		return err
	}

	stations, err := registry.Load(a.param.Registry.Path)
	if err != nil {
		return err
	}

	title, playing, err := a.control.CurrentTitle()
	if err != nil {
		return err
	}
	if !playing {
		logrus.Debugf("Nothing currently playing")
	}

	sel, err := selector.New(stations, title, playing, floor)
	if err != nil {
		return err
	}

	var picked station.Station
	switch cmd {
	case CommandNext:
		picked, err = sel.Next(a.control)
	case CommandPrevious:
		picked, err = sel.Previous(a.control)
	case CommandRandom:
		picked, err = sel.Random(a.control)
	}
	if err != nil {
		return err
	}

	logrus.Infof("Switched to %q (%s)", picked.Title, picked.Location)
	return nil
}
