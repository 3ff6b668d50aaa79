package types

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile marks a structurally invalid character profile, such as
// one with an empty topic or format list. Profiles are validated once when
// constructed; the behavior engine is not required to recover from one that
// slipped through.
var ErrInvalidProfile = errors.New("invalid character profile")

// DailyRoutine holds the scheduled entries for the two day segments, in the
// order they should be matched. Each entry is "<hour>: <activity>",
// e.g. "09: Writing code".
type DailyRoutine struct {
	Morning []string `json:"morning"`
	Evening []string `json:"evening"`
}

// ContentPreferences lists what a character posts about and in which formats.
// Topic order fixes the tie order of weighted selection; format order is the
// default fallback order.
type ContentPreferences struct {
	Topics  []string `json:"topics"`
	Formats []string `json:"formats"`
}

// Character is the persona profile. It is built once by the character
// generator at startup and never mutated afterwards; the behavior engine
// only reads it.
type Character struct {
	Name               string             `json:"name"`
	Age                int                `json:"age"`
	Location           string             `json:"location"`
	Occupation         string             `json:"occupation"`
	Interests          []string           `json:"interests"`
	PersonalityTraits  []string           `json:"personality_traits"`
	DailyRoutine       DailyRoutine       `json:"daily_routine"`
	ContentPreferences ContentPreferences `json:"content_preferences"`
}

// Validate checks the structural contract the behavior engine relies on.
func (c *Character) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: character is nil", ErrInvalidProfile)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidProfile)
	}
	if len(c.ContentPreferences.Topics) == 0 {
		return fmt.Errorf("%w: no content topics", ErrInvalidProfile)
	}
	if len(c.ContentPreferences.Formats) == 0 {
		return fmt.Errorf("%w: no content formats", ErrInvalidProfile)
	}
	return nil
}
