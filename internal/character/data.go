package character

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
)

// Data holds the regional tables character generation draws from. A zero
// field falls back to the built-in defaults.
type Data struct {
	Locations         map[string][]string `json:"locations"`
	Occupations       map[string][]string `json:"occupations"`
	InterestsByRegion map[string][]string `json:"interests_by_region"`
}

// dataSchema validates an external data file before it replaces the
// defaults: every table is a map from name to a list of strings.
var dataSchema = &jsonschema.Schema{
	Type: "object",
	Properties: map[string]*jsonschema.Schema{
		"locations":           stringListTable(),
		"occupations":         stringListTable(),
		"interests_by_region": stringListTable(),
	},
}

func stringListTable() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		AdditionalProperties: &jsonschema.Schema{
			Type:  "array",
			Items: &jsonschema.Schema{Type: "string"},
		},
	}
}

// LoadData reads and validates a character data file. Tables absent from
// the file keep their defaults.
func LoadData(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read character data: %w", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Data{}, fmt.Errorf("parse character data: %w", err)
	}

	resolved, err := dataSchema.Resolve(nil)
	if err != nil {
		return Data{}, fmt.Errorf("resolve character data schema: %w", err)
	}
	if err := resolved.Validate(decoded); err != nil {
		return Data{}, fmt.Errorf("invalid character data file %s: %w", path, err)
	}

	data := defaultData()
	var loaded Data
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return Data{}, fmt.Errorf("decode character data: %w", err)
	}
	if len(loaded.Locations) > 0 {
		data.Locations = loaded.Locations
	}
	if len(loaded.Occupations) > 0 {
		data.Occupations = loaded.Occupations
	}
	if len(loaded.InterestsByRegion) > 0 {
		data.InterestsByRegion = loaded.InterestsByRegion
	}
	return data, nil
}

func defaultData() Data {
	return Data{
		Locations: map[string][]string{
			"India":       {"Mumbai", "Bangalore", "Delhi", "Pune", "Chennai"},
			"South Korea": {"Seoul", "Busan", "Incheon", "Daegu", "Daejeon"},
		},
		Occupations: map[string][]string{
			"tech":         {"Software Developer", "UX Designer", "Data Scientist", "Game Developer"},
			"creative":     {"Content Creator", "Digital Artist", "Music Producer", "Food Blogger"},
			"professional": {"Marketing Specialist", "Startup Founder", "Product Manager"},
		},
		InterestsByRegion: map[string][]string{
			"India": {
				"Classical dance", "Cricket", "Bollywood movies", "Street food",
				"Yoga", "Tech startups", "Classical music", "Photography",
			},
			"South Korea": {
				"K-pop", "Gaming", "Cafe culture", "Street fashion",
				"Food vlogs", "Urban photography", "Electronic music", "Webtoons",
			},
		},
	}
}

// namesByRegion are region-appropriate display names.
var namesByRegion = map[string][]string{
	"India": {
		"Aanya Sharma", "Arjun Patel", "Diya Reddy", "Advait Kumar",
		"Zara Menon", "Vihaan Singh", "Ishaan Kapoor", "Anaya Gupta",
	},
	"South Korea": {
		"Min-ji Kim", "Jun-ho Park", "Seo-yeon Lee", "Ji-woo Choi",
		"Hae-won Jung", "Tae-hyung Kang", "Yoo-jin Hwang", "Soo-min Yang",
	},
}

// occupationInterests supplements regional interests with work-adjacent ones.
var occupationInterests = map[string][]string{
	"Software Developer": {"Open source projects", "AI/ML", "Hackathons", "Tech meetups"},
	"Content Creator":    {"Video editing", "Social media trends", "Digital marketing", "Storytelling"},
	"Game Developer":     {"Game design", "Pixel art", "Game jams", "Gaming communities"},
}

var genericOccupationInterests = []string{"Professional networking", "Industry events"}

var baseTraits = []string{
	"Creative", "Analytical", "Ambitious", "Empathetic",
	"Detail-oriented", "Innovative", "Social", "Introspective",
}

var occupationTraits = map[string][]string{
	"tech":         {"Logical", "Curious", "Problem-solver"},
	"creative":     {"Expressive", "Imaginative", "Free-spirited"},
	"professional": {"Organized", "Strategic", "Leadership-oriented"},
}

// occupationTopics seeds content topics beyond the interest-derived ones.
var occupationTopics = map[string][]string{
	"Software Developer": {"Technology tutorials", "Coding tips"},
	"Content Creator":    {"Content strategy", "Creative process"},
	"Game Developer":     {"Game development", "Gaming industry insights"},
}

var contentFormats = []string{
	"Tutorial videos",
	"Day-in-life vlogs",
	"Behind-the-scenes",
	"Quick tips",
	"Story time",
	"Project showcases",
}
