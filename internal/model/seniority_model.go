package model

// SeniorityLevel beschreibt eine wählbare Erfahrungsstufe für die
// Stellenanzeigen-Generierung.
type SeniorityLevel struct {
	Level       string `json:"level"`
	Years       string `json:"years"`
	DisplayName string `json:"display_name"`
}

var SeniorityLevels = []SeniorityLevel{
	{Level: "entry", Years: "0-1 Jahre", DisplayName: "Entry Level"},
	{Level: "junior", Years: "1-5 Jahre", DisplayName: "Junior"},
	{Level: "mid", Years: "6-9 Jahre", DisplayName: "Mid-Level"},
	{Level: "senior", Years: "10+ Jahre", DisplayName: "Senior"},
}

// SeniorityByLevel looks up a seniority entry by its level key.
func SeniorityByLevel(level string) (SeniorityLevel, bool) {
	for _, s := range SeniorityLevels {
		if s.Level == level {
			return s, true
		}
	}
	return SeniorityLevel{}, false
}
