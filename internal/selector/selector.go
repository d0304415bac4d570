package selector

import (
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"radiohop/internal/failure"
	"radiohop/internal/station"
)

// Player starts playback of a station location. Implemented by
// player.Control; kept narrow so tests can observe play requests.
type Player interface {
	Play(location string) error
}

const noCurrent = -1

// Selector holds the loaded registry, the position of the station
// believed to be playing, and the derived candidate list the next pick
// comes from.
type Selector struct {
	stations   []station.Station
	current    int
	floor      int
	candidates []station.Station
}

// New builds a selector from the registry order and the player's
// "now playing" report. The playing station is located by exact title
// match after trimming whitespace; with duplicate titles the lowest
// index wins. Fails when no station clears the rating floor.
func New(stations []station.Station, playingTitle string, hasPlaying bool, floor int) (*Selector, error) {
	s := &Selector{
		stations: stations,
		current:  noCurrent,
		floor:    floor,
	}

	if hasPlaying {
		want := strings.TrimSpace(playingTitle)
		for _, st := range stations {
			if strings.TrimSpace(st.Title) == want {
				s.current = st.Index
				break
			}
		}
	}
	if s.current == noCurrent {
		logrus.Debugf("No registry station matches the playing title, keeping full registry order")
	} else {
		logrus.Debugf("Current station is %d: %q", s.current, stations[s.current].Title)
	}

	if err := s.recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

// CurrentIndex returns the index of the station believed to be playing.
func (s *Selector) CurrentIndex() (int, bool) {
	if s.current == noCurrent {
		return 0, false
	}
	return s.current, true
}

// Candidates returns the stations eligible for the next pick, in
// rotated registry order.
func (s *Selector) Candidates() []station.Station {
	return s.candidates
}

// Next switches to the first candidate after the current station.
func (s *Selector) Next(p Player) (station.Station, error) {
	return s.play(p, s.candidates[0])
}

// Previous switches to the last candidate before the current station.
func (s *Selector) Previous(p Player) (station.Station, error) {
	return s.play(p, s.candidates[len(s.candidates)-1])
}

// Random switches to a uniformly random candidate.
func (s *Selector) Random(p Player) (station.Station, error) {
	return s.play(p, s.candidates[rand.Intn(len(s.candidates))])
}

// play hands the pick to the player. Only a successful play moves the
// current position and recomputes the candidates; on failure the
// selector keeps its pre-play state untouched.
func (s *Selector) play(p Player, pick station.Station) (station.Station, error) {
	if err := p.Play(pick.Location); err != nil {
		return station.Station{}, err
	}

	s.current = pick.Index
	if err := s.recompute(); err != nil {
		return station.Station{}, err
	}
	return pick, nil
}

// recompute derives the candidate list: stations strictly after the
// current one followed by stations strictly before it, then filtered
// by the rating floor. The filter runs after the rotation so
// "previous" stays the last eligible station before the current one.
func (s *Selector) recompute() error {
	pool := rotate(s.stations, s.current)

	kept := make([]station.Station, 0, len(pool))
	for _, st := range pool {
		if st.Rating >= s.floor {
			kept = append(kept, st)
		}
	}
	if len(kept) == 0 {
		return failure.New(failure.NoStationsToSwitchTo, "no station with rating >= %d to switch to", s.floor)
	}

	s.candidates = kept
	logrus.Debugf("Candidates: %d stations", len(kept))
	for _, st := range kept {
		logrus.Debugf("  candidate %d: %q rating %d", st.Index, st.Title, st.Rating)
	}
	return nil
}

// rotate reorders stations so everything after current comes first,
// followed by everything before it, excluding current itself. With no
// current station the registry order is kept as is.
func rotate(stations []station.Station, current int) []station.Station {
	rotated := make([]station.Station, 0, len(stations))
	if current == noCurrent {
		return append(rotated, stations...)
	}
	rotated = append(rotated, stations[current+1:]...)
	return append(rotated, stations[:current]...)
}
