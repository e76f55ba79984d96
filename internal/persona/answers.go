package persona

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched by every *InputError.
var ErrInvalidInput = errors.New("invalid quiz input")

// InputError names the quiz field that is missing or outside its declared set.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string { return e.Field + " " + e.Reason }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

type ComfortLevel string

const (
	ComfortLow    ComfortLevel = "low"
	ComfortMedium ComfortLevel = "medium"
	ComfortHigh   ComfortLevel = "high"
)

type SoloExperience string

const (
	SoloNone     SoloExperience = "0-1"
	SoloSome     SoloExperience = "2-4"
	SoloSeasoned SoloExperience = "5+"
)

type NightTravel string

const (
	NightAvoid       NightTravel = "avoid"
	NightNeutral     NightTravel = "neutral"
	NightComfortable NightTravel = "comfortable"
)

type TransportConfidence string

const (
	TransportWalk      TransportConfidence = "walk"
	TransportMetro     TransportConfidence = "metro"
	TransportRideShare TransportConfidence = "ride-share"
)

// Declared value sets, least to most adventurous. The index of a value is its score.
var (
	ComfortLevels        = []ComfortLevel{ComfortLow, ComfortMedium, ComfortHigh}
	SoloExperiences      = []SoloExperience{SoloNone, SoloSome, SoloSeasoned}
	NightTravels         = []NightTravel{NightAvoid, NightNeutral, NightComfortable}
	TransportConfidences = []TransportConfidence{TransportWalk, TransportMetro, TransportRideShare}
)

// Answers is one quiz submission.
type Answers struct {
	ComfortLevel        ComfortLevel
	SoloExperience      SoloExperience
	NightTravel         NightTravel
	TransportConfidence TransportConfidence
	AnxietyTriggers     []string
}

// Validate reports the first field that is missing or out of range.
func (a Answers) Validate() error {
	_, err := a.score()
	return err
}

// RiskIndex is the aggregate risk-tolerance index of a valid submission.
func (a Answers) RiskIndex() (int, error) {
	return a.score()
}

func (a Answers) score() (int, error) {
	comfort, err := ordinal("comfort_level", a.ComfortLevel, ComfortLevels)
	if err != nil {
		return 0, err
	}
	solo, err := ordinal("solo_experience", a.SoloExperience, SoloExperiences)
	if err != nil {
		return 0, err
	}
	night, err := ordinal("night_travel", a.NightTravel, NightTravels)
	if err != nil {
		return 0, err
	}
	transport, err := ordinal("transport_confidence", a.TransportConfidence, TransportConfidences)
	if err != nil {
		return 0, err
	}
	return comfort + solo + night + transport, nil
}

// MaxRiskIndex is the index of the most adventurous possible submission.
func MaxRiskIndex() int {
	return len(ComfortLevels) + len(SoloExperiences) + len(NightTravels) + len(TransportConfidences) - 4
}

func ordinal[T ~string](field string, v T, set []T) (int, error) {
	if v == "" {
		return 0, &InputError{Field: field, Reason: "is required"}
	}
	for i, allowed := range set {
		if v == allowed {
			return i, nil
		}
	}
	return 0, &InputError{Field: field, Reason: fmt.Sprintf("must be one of %s, got %q", joinValues(set), string(v))}
}

func joinValues[T ~string](set []T) string {
	parts := make([]string, len(set))
	for i, v := range set {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// NormalizeTag folds a free-text trigger or tag into its canonical form:
// trimmed, lower-cased, with whitespace and underscores collapsed into dashes.
func NormalizeTag(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '_' || r == '-'
	})
	return strings.Join(fields, "-")
}

// NormalizeTags normalizes, drops empties and deduplicates, keeping first-seen order.
func NormalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		t := NormalizeTag(raw)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
