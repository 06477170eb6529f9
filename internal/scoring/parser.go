package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var scorePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

const (
	defaultScore    = 50.0
	defaultFeedback = "Keine detaillierte Bewertung verfügbar"
	maxSuggestions  = 3
)

var defaultSuggestions = []string{"Keine spezifischen Verbesserungsvorschläge"}

// ParseScoreResponse interprets an LLM reply in the format
// "SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2,VORSCHLAG3". Every malformed
// piece degrades to a neutral default; parsing never fails.
func ParseScoreResponse(response, id, name string) CategoryScore {
	parts := strings.Split(response, "|")

	score := defaultScore
	if match := scorePattern.FindString(parts[0]); match != "" {
		if parsed, err := strconv.ParseFloat(match, 64); err == nil {
			score = parsed
		}
	}
	score = clampScore(score)

	feedback := defaultFeedback
	if len(parts) > 1 {
		if trimmed := strings.TrimSpace(parts[1]); trimmed != "" {
			feedback = trimmed
		}
	}

	var suggestions []string
	if len(parts) > 2 {
		for _, s := range strings.Split(parts[2], ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				suggestions = append(suggestions, trimmed)
			}
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}
	if len(suggestions) == 0 {
		suggestions = defaultSuggestions
	}

	return CategoryScore{
		ID:          id,
		Name:        name,
		Score:       score,
		MaxScore:    100,
		Feedback:    feedback,
		Suggestions: suggestions,
		Level:       LevelForScore(score),
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
