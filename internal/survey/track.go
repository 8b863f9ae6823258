package survey

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Track is one of the three career domains covered by the survey.
type Track string

const (
	TrackWeb   Track = "web"
	TrackData  Track = "data"
	TrackCloud Track = "cloud"
)

// ErrUnknownTrack is returned for any identifier outside web, data and cloud.
var ErrUnknownTrack = errors.New("unknown career track")

// Tracks returns the tracks in selector order.
func Tracks() []Track {
	return []Track{TrackWeb, TrackData, TrackCloud}
}

func (t Track) Valid() bool {
	switch t {
	case TrackWeb, TrackData, TrackCloud:
		return true
	}
	return false
}

// Label is the long series name used in chart legends.
func (t Track) Label() string {
	switch t {
	case TrackWeb:
		return "Web Dev"
	case TrackData:
		return "Data & AI"
	case TrackCloud:
		return "Cloud & DevOps"
	default:
		return string(t)
	}
}

// ButtonLabel is the short upper-case label of the predictor selector.
func (t Track) ButtonLabel() string {
	switch t {
	case TrackWeb:
		return "WEB DEV"
	case TrackData:
		return "DATA & AI"
	case TrackCloud:
		return "CLOUD/DEVOPS"
	default:
		return strings.ToUpper(string(t))
	}
}

// maxSuggestDistance bounds how far a typo may be from a track name before
// ParseTrack stops suggesting it.
const maxSuggestDistance = 2

// ParseTrack resolves a user-supplied track identifier. Matching is
// case-insensitive; near misses produce an error carrying a suggestion.
func ParseTrack(s string) (Track, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	t := Track(name)
	if t.Valid() {
		return t, nil
	}
	if suggestion, ok := suggestTrack(name); ok {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownTrack, s, suggestion)
	}
	return "", fmt.Errorf("%w %q (want one of web, data, cloud)", ErrUnknownTrack, s)
}

func suggestTrack(name string) (Track, bool) {
	if name == "" {
		return "", false
	}
	best := Track("")
	bestDist := maxSuggestDistance + 1
	for _, t := range Tracks() {
		d := levenshtein.ComputeDistance(name, string(t))
		if d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, best != ""
}
