package behavior

import (
	"math"
	"strings"
	"time"
)

const (
	baseEnergy   = 0.7
	energyStdDev = 0.2
	// traitEnergyShift is how far "Energetic" raises and "Introspective"
	// lowers the base energy.
	traitEnergyShift = 0.2
)

// timeWindow scales energy by time of day. Windows are contiguous and
// exhaustive over the 24-hour clock with half-open [from, to) bounds.
type timeWindow struct {
	from, to   int
	multiplier float64
}

var energyWindows = []timeWindow{
	{0, 6, 0.5},
	{6, 12, 1.2},
	{12, 17, 1.0},
	{17, 21, 0.9},
	{21, 24, 0.6},
}

// traitMoods is one trait-flavored mood vocabulary inside a band.
type traitMoods struct {
	trait string
	moods [3]string
}

// moodBand maps an energy interval [min, max) to mood vocabularies. Band
// keys are checked against the character's traits in the traits' stored
// order; defaults apply when none match.
type moodBand struct {
	min, max float64
	traits   []traitMoods
	defaults [3]string
}

var moodBands = []moodBand{
	{
		min: 1.5, max: math.Inf(1),
		traits: []traitMoods{
			{"Creative", [3]string{"inspired", "innovative", "imaginative"}},
			{"Analytical", [3]string{"focused", "determined", "engaged"}},
		},
		defaults: [3]string{"excited", "energetic", "enthusiastic"},
	},
	{
		min: 1.2, max: 1.5,
		traits: []traitMoods{
			{"Social", [3]string{"friendly", "sociable", "connected"}},
			{"Professional", [3]string{"productive", "efficient", "engaged"}},
		},
		defaults: [3]string{"content", "positive", "balanced"},
	},
	{
		min: 0.8, max: 1.2,
		traits: []traitMoods{
			{"Introspective", [3]string{"contemplative", "thoughtful", "meditative"}},
			{"Empathetic", [3]string{"caring", "understanding", "compassionate"}},
		},
		defaults: [3]string{"calm", "neutral", "steady"},
	},
	{
		min: 0.4, max: 0.8,
		traits: []traitMoods{
			{"Detail-oriented", [3]string{"careful", "precise", "methodical"}},
			{"Innovative", [3]string{"brainstorming", "exploring", "curious"}},
		},
		defaults: [3]string{"tired", "quiet", "reserved"},
	},
	{
		min: 0.0, max: 0.4,
		traits: []traitMoods{
			{"Ambitious", [3]string{"focused", "persevering", "pushing_through"}},
		},
		defaults: [3]string{"exhausted", "need_rest", "reflective"},
	},
}

// SynthesizeMood samples a mood for the current time and trait set. Energy
// is a noisy latent scalar: a trait-adjusted base with gaussian noise,
// scaled by the time-of-day multiplier. The resulting energy band selects
// the mood vocabulary, so repeated calls vary run to run while staying
// plausible for the hour and personality.
func (e *Engine) SynthesizeMood(now time.Time, traits []string) string {
	return e.moodForEnergy(e.sampleEnergy(now, traits), traits)
}

func (e *Engine) sampleEnergy(now time.Time, traits []string) float64 {
	base := baseEnergy
	if containsFold(traits, "Energetic") {
		base += traitEnergyShift
	}
	if containsFold(traits, "Introspective") {
		base -= traitEnergyShift
	}

	energy := base + e.rng.NormFloat64()*energyStdDev
	return energy * windowMultiplier(now.Hour())
}

func windowMultiplier(hour int) float64 {
	for _, w := range energyWindows {
		if hour >= w.from && hour < w.to {
			return w.multiplier
		}
	}
	return 1.0
}

// moodForEnergy resolves the band for the energy level, then picks
// uniformly from the first band vocabulary whose trait appears in the
// character's traits, falling back to the band defaults. Trait precedence
// follows the traits' stored order, not the band table's.
func (e *Engine) moodForEnergy(energy float64, traits []string) string {
	for i := range moodBands {
		band := &moodBands[i]
		if energy < band.min || energy >= band.max {
			continue
		}
		for _, trait := range traits {
			for _, tm := range band.traits {
				if strings.EqualFold(trait, tm.trait) {
					return tm.moods[e.rng.Intn(len(tm.moods))]
				}
			}
		}
		return band.defaults[e.rng.Intn(len(band.defaults))]
	}
	// Gaussian noise can push energy below the lowest band bound.
	return "neutral"
}
