package scoring

import "fmt"

// CategoryScore ist das Ergebnis einer einzelnen Bewertungskategorie.
type CategoryScore struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Score       float64    `json:"score"`
	MaxScore    float64    `json:"max_score"`
	Feedback    string     `json:"feedback"`
	Suggestions []string   `json:"suggestions"`
	Level       ScoreLevel `json:"level"`
}

// ErrorCategory is the neutral fallback for a dimension whose LLM call
// failed. The composite keeps its shape, callers never see an error.
func ErrorCategory(id, name string) CategoryScore {
	return CategoryScore{
		ID:          id,
		Name:        name,
		Score:       50.0,
		MaxScore:    100,
		Feedback:    fmt.Sprintf("Bewertung von %s konnte nicht durchgeführt werden (technischer Fehler)", name),
		Suggestions: []string{"Bitte versuchen Sie es später erneut"},
		Level:       LevelVerbesserungswuerdig,
	}
}
