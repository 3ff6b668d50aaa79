// Package character builds persona profiles from regional and occupational
// data tables. Profiles are constructed once at startup and handed to the
// simulation read-only.
package character

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/easegen/influencer-sim/internal/types"
)

// Generator produces Character profiles. Not safe for concurrent use; it
// owns a random source and a profile cache.
type Generator struct {
	rng   *rand.Rand
	data  Data
	cache map[string]*types.Character
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithData replaces the built-in tables.
func WithData(data Data) Option {
	return func(g *Generator) {
		g.data = data
	}
}

// NewGenerator creates a Generator. A non-empty dataPath loads and
// validates an external data file; otherwise the built-in defaults apply.
func NewGenerator(dataPath string, opts ...Option) (*Generator, error) {
	g := &Generator{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		data:  defaultData(),
		cache: make(map[string]*types.Character),
	}
	if dataPath != "" {
		data, err := LoadData(dataPath)
		if err != nil {
			return nil, err
		}
		g.data = data
		slog.Info("character data loaded", "path", dataPath)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate builds a character for the region. occupationCategory may be
// empty, in which case a random category is used. Repeated calls with the
// same parameters return the cached profile.
func (g *Generator) Generate(region string, minAge, maxAge int, occupationCategory string) (*types.Character, error) {
	locations, ok := g.data.Locations[region]
	if !ok || len(locations) == 0 {
		return nil, fmt.Errorf("unsupported region: %s", region)
	}
	if minAge <= 0 || maxAge < minAge {
		return nil, fmt.Errorf("invalid age range %d-%d", minAge, maxAge)
	}

	cacheKey := fmt.Sprintf("%s_%s_%d-%d", region, occupationCategory, minAge, maxAge)
	if cached, ok := g.cache[cacheKey]; ok {
		return cached, nil
	}

	age := minAge + g.rng.Intn(maxAge-minAge+1)
	location := fmt.Sprintf("%s, %s", locations[g.rng.Intn(len(locations))], region)

	category := occupationCategory
	if category == "" {
		category = g.pickCategory()
	}
	pool, ok := g.data.Occupations[category]
	if !ok || len(pool) == 0 {
		return nil, fmt.Errorf("unsupported occupation category: %s", category)
	}
	occupation := pool[g.rng.Intn(len(pool))]

	interests := g.generateInterests(region, occupation)

	c := &types.Character{
		Name:               g.generateName(region),
		Age:                age,
		Location:           location,
		Occupation:         occupation,
		Interests:          interests,
		PersonalityTraits:  g.generateTraits(category),
		DailyRoutine:       generateRoutine(occupation, region),
		ContentPreferences: g.generatePreferences(interests, occupation),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g.cache[cacheKey] = c
	slog.Info("character generated", "name", c.Name, "region", region, "occupation", occupation)
	return c, nil
}

// ClearCache drops all cached profiles.
func (g *Generator) ClearCache() {
	g.cache = make(map[string]*types.Character)
}

// pickCategory draws an occupation category. Map iteration order is not
// stable, so categories are sorted before drawing to keep seeded runs
// reproducible.
func (g *Generator) pickCategory() string {
	categories := make([]string, 0, len(g.data.Occupations))
	for category := range g.data.Occupations {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories[g.rng.Intn(len(categories))]
}

func (g *Generator) generateName(region string) string {
	names, ok := namesByRegion[region]
	if !ok || len(names) == 0 {
		return fmt.Sprintf("Creator from %s", region)
	}
	return names[g.rng.Intn(len(names))]
}

func (g *Generator) generateInterests(region, occupation string) []string {
	regional := g.sample(g.data.InterestsByRegion[region], 3)

	workPool, ok := occupationInterests[occupation]
	if !ok {
		workPool = genericOccupationInterests
	}
	return append(regional, g.sample(workPool, 2)...)
}

func (g *Generator) generateTraits(category string) []string {
	pool := append([]string{}, baseTraits...)
	pool = append(pool, occupationTraits[category]...)
	return g.sample(pool, 4)
}

func (g *Generator) generatePreferences(interests []string, occupation string) types.ContentPreferences {
	topics := make([]string, 0, len(interests)+2)
	for _, interest := range interests {
		topics = append(topics, strings.ToLower(interest)+" tips")
	}
	if extra, ok := occupationTopics[occupation]; ok {
		topics = append(topics, extra...)
	} else {
		topics = append(topics, strings.ToLower(occupation)+" insights")
	}

	return types.ContentPreferences{
		Topics:  g.sample(topics, 4),
		Formats: g.sample(contentFormats, 4),
	}
}

// generateRoutine produces a culturally flavored schedule with the
// occupation worked into the morning block.
func generateRoutine(occupation, region string) types.DailyRoutine {
	if region == "India" {
		return types.DailyRoutine{
			Morning: []string{
				"6: Yoga and meditation",
				"7: Breakfast with family",
				fmt.Sprintf("9: %s work", occupation),
			},
			Evening: []string{
				"18: Evening hobby time",
				"20: Family dinner",
				"22: Content creation",
			},
		}
	}
	return types.DailyRoutine{
		Morning: []string{
			"7: Morning exercise",
			"8: Breakfast at a local cafe",
			fmt.Sprintf("9: %s work", occupation),
		},
		Evening: []string{
			"18: After-work hobby time",
			"20: Personal projects",
			"23: Late night content creation",
		},
	}
}

// sample picks up to n distinct items in random order.
func (g *Generator) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]string, 0, n)
	for _, idx := range g.rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}
