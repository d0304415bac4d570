package registry

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"radiohop/internal/failure"
	"radiohop/internal/station"
)

// Load reads the player's stations file and returns its internet-radio
// entries in document order, with zero-based indices assigned as they
// appear. The file holds one entry per block of key=value lines, blocks
// separated by blank lines; lines starting with '#' are comments.
// Blocks without a uri key belong to other registry entry kinds and are
// skipped. A radio block with an empty uri, a missing or empty title,
// or an unparsable rating makes the whole registry unusable.
func Load(path string) ([]station.Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.RegistryUnavailable, err, "cannot read station registry %s", path)
	}
	defer f.Close()

	stations := []station.Station{}
	block := map[string]string{}
	blockStart := 0

	flush := func() *failure.Error {
		defer func() {
			block = map[string]string{}
		}()

		if len(block) == 0 {
			return nil
		}
		uri, isRadio := block["uri"]
		if !isRadio {
			return nil
		}

		uri = strings.TrimSpace(uri)
		title := strings.TrimSpace(block["title"])
		if uri == "" || title == "" {
			return failure.New(failure.RegistryUnavailable, "malformed radio entry at line %d of %s: uri and title are required", blockStart, path)
		}

		rating := 0
		if raw, hasRating := block["rating"]; hasRating {
			parsed, convErr := strconv.Atoi(strings.TrimSpace(raw))
			if convErr != nil {
				return failure.Wrap(failure.RegistryUnavailable, convErr, "malformed radio entry at line %d of %s: bad rating %q", blockStart, path, raw)
			}
			rating = parsed
		}

		stations = append(stations, station.Station{
			Index:    len(stations),
			Location: uri,
			Title:    title,
			Rating:   rating,
		})
		return nil
	}

	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		if len(block) == 0 {
			blockStart = lineNumber
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, failure.New(failure.RegistryUnavailable, "malformed registry line %d of %s: %q", lineNumber, path, line)
		}
		block[strings.TrimSpace(key)] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, failure.Wrap(failure.RegistryUnavailable, err, "cannot read station registry %s", path)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	logrus.Debugf("Loaded %d radio stations from %s", len(stations), path)
	for _, st := range stations {
		logrus.Debugf("  station %d: %q rating %d (%s)", st.Index, st.Title, st.Rating, st.Location)
	}

	return stations, nil
}
