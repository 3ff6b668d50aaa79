package behavior

import (
	"slices"
	"strings"
	"time"

	"github.com/easegen/influencer-sim/internal/types"
)

// ContentIdea is what the simulation hands to the content renderers.
type ContentIdea struct {
	Topic  string `json:"topic"`
	Format string `json:"format"`
	Mood   string `json:"mood"`
	// Context is the activity the character is doing right now.
	Context string `json:"context"`
}

const (
	activityTopicBoost     = 0.5
	interestTopicBoost     = 0.3
	lowEnergyFormatPenalty = 0.3
	highEnergyFormatBoost  = 0.2
)

var (
	lowEnergyMoods  = []string{"tired", "exhausted"}
	heavyFormats    = []string{"Tutorial videos", "Long-form content"}
	highEnergyMoods = []string{"excited", "inspired"}
	lightFormats    = []string{"Quick tips", "Behind-the-scenes"}
)

// GenerateIdea picks a weighted topic/format pair for the character's
// current context. Activity and mood are resolved exactly once and reused
// for both the weighting and the returned idea, so the reported context can
// never drift from the context that drove the selection.
func (e *Engine) GenerateIdea(now time.Time, c *types.Character) (ContentIdea, error) {
	if err := c.Validate(); err != nil {
		return ContentIdea{}, err
	}

	activity := e.ResolveActivity(now, c.DailyRoutine)
	mood := e.SynthesizeMood(now, c.PersonalityTraits)

	topics := c.ContentPreferences.Topics
	formats := c.ContentPreferences.Formats

	return ContentIdea{
		Topic:   e.weightedPick(topics, topicWeights(topics, c.Interests, activity)),
		Format:  e.weightedPick(formats, formatWeights(formats, mood)),
		Mood:    mood,
		Context: activity,
	}, nil
}

// topicWeights assigns each topic its selection weight: 1.0 base, raised
// when a word of the current activity or one of the character's interests
// appears inside the topic. Matching is lower-cased substring matching.
func topicWeights(topics, interests []string, activity string) []float64 {
	activityWords := strings.Fields(strings.ToLower(activity))

	weights := make([]float64, len(topics))
	for i, topic := range topics {
		lowered := strings.ToLower(topic)
		weight := 1.0
		for _, word := range activityWords {
			if strings.Contains(lowered, word) {
				weight += activityTopicBoost
				break
			}
		}
		for _, interest := range interests {
			if strings.Contains(lowered, strings.ToLower(interest)) {
				weight += interestTopicBoost
				break
			}
		}
		weights[i] = weight
	}
	return weights
}

// formatWeights biases format selection by mood: low-energy moods demote
// the heavier formats, high-energy moods promote the quick ones.
func formatWeights(formats []string, mood string) []float64 {
	weights := make([]float64, len(formats))
	for i, format := range formats {
		weight := 1.0
		if slices.Contains(lowEnergyMoods, mood) && slices.Contains(heavyFormats, format) {
			weight -= lowEnergyFormatPenalty
		}
		if slices.Contains(highEnergyMoods, mood) && slices.Contains(lightFormats, format) {
			weight += highEnergyFormatBoost
		}
		weights[i] = weight
	}
	return weights
}
