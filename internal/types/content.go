package types

import (
	"strings"
	"time"
	"unicode"
)

// Post is a generated piece of content ready for persistence.
type Post struct {
	ID            int       `json:"id"`
	CharacterName string    `json:"character_name"`
	Timestamp     time.Time `json:"timestamp"`
	ContentType   string    `json:"content_type"` // text, image, multimodal
	Caption       string    `json:"caption"`
	Topic         string    `json:"topic"`
	Format        string    `json:"format"`
	Mood          string    `json:"mood"`
	// Context records the activity the character was doing when the post
	// was generated.
	Context   string    `json:"context"`
	ImageURL  string    `json:"image_url,omitempty"`
	Hashtags  []string  `json:"hashtags"`
	Embedding []float32 `json:"-"` // caption embedding, not serialized
}

// SimilarPost is a previously stored post scored against a new caption.
type SimilarPost struct {
	Caption    string    `json:"caption"`
	Topic      string    `json:"topic"`
	Similarity float64   `json:"similarity"`
	CreatedAt  time.Time `json:"created_at"`
}

// BuildHashtags derives post hashtags from the content idea and location.
// Location is "<city>, <country>"; a single-part location yields the same
// tag twice and is collapsed by the dedup pass.
func BuildHashtags(topic, format, mood, activity, location string, at time.Time) []string {
	parts := strings.Split(location, ",")
	city := hashtagWord(parts[0])
	country := hashtagWord(parts[len(parts)-1])

	meridiem := "am"
	if at.Hour() >= 12 {
		meridiem = "pm"
	}

	candidates := []string{
		"#" + city + "Life",
		"#" + country + "Life",
		"#" + hashtagWord(topic),
		"#" + hashtagWord(format),
		"#" + hashtagWord(mood),
		"#" + hashtagWord(activity),
		"#" + meridiem + city,
	}

	seen := make(map[string]bool, len(candidates))
	tags := make([]string, 0, len(candidates))
	for _, tag := range candidates {
		if tag == "#" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// hashtagWord title-cases the text and strips everything non-alphanumeric.
func hashtagWord(text string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range strings.TrimSpace(text) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			startOfWord = true
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
