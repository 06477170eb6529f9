package scoring

// ScoreLevel ist die Bewertungsstufe für Einzelkategorien und Gesamtscores.
type ScoreLevel string

const (
	LevelSchlecht             ScoreLevel = "schlecht"             // 0-40
	LevelVerbesserungswuerdig ScoreLevel = "verbesserungswürdig"  // 41-60
	LevelGut                  ScoreLevel = "gut"                  // 61-80
	LevelSehrGut              ScoreLevel = "sehr_gut"             // 81-100
)

// LevelForScore maps a 0-100 score to its quality level.
func LevelForScore(score float64) ScoreLevel {
	switch {
	case score >= 81:
		return LevelSehrGut
	case score >= 61:
		return LevelGut
	case score >= 41:
		return LevelVerbesserungswuerdig
	default:
		return LevelSchlecht
	}
}
