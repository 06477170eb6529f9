package scoring

// Ad is the raw input every dimension judges: the advertised job title
// plus the full ad text.
type Ad struct {
	Title string
	Text  string
}

// Dimension is one entry of a rubric's closed dimension list. The
// excerpt rule decides which slice of the ad the LLM gets to see, the
// system prompt carries the grading criteria.
type Dimension struct {
	ID           string
	Name         string
	Weight       float64
	MaxTokens    int
	SystemPrompt string
	UserPrompt   func(ad Ad) string
}
