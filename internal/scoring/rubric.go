package scoring

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Rubric evaluates a job ad against a closed list of weighted
// dimensions, one LLM call per dimension.
type Rubric struct {
	Name       string
	Dimensions []Dimension

	completer Completer
	log       *zap.Logger
}

// RubricScore ist das Gesamtergebnis einer Rubrik-Bewertung.
type RubricScore struct {
	Rubric       string          `json:"rubric"`
	IsConfigured bool            `json:"is_configured"`
	Categories   []CategoryScore `json:"categories"`
	GesamtScore  float64         `json:"gesamt_score"`
	GesamtLevel  ScoreLevel      `json:"gesamt_level"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CompleteScore bundles the results of both rubrics for one ad.
type CompleteScore struct {
	UserID         string      `json:"user_id"`
	JobTitle       string      `json:"job_title"`
	JobAdText      string      `json:"job_ad_text"`
	StepstoneScore RubricScore `json:"stepstone_score"`
	ExpertScore    RubricScore `json:"expert_score"`
	CreatedAt      time.Time   `json:"created_at"`
}

func NewRubric(name string, dimensions []Dimension, completer Completer, log *zap.Logger) *Rubric {
	return &Rubric{Name: name, Dimensions: dimensions, completer: completer, log: log}
}

func NewStepstoneRubric(completer Completer, log *zap.Logger) *Rubric {
	return NewRubric("stepstone", StepstoneDimensions(), completer, log)
}

func NewExpertRubric(completer Completer, log *zap.Logger) *Rubric {
	return NewRubric("westpress_expert", ExpertDimensions(), completer, log)
}

// Configured reports whether the rubric has a usable LLM collaborator.
func (r *Rubric) Configured() bool {
	return r.completer != nil && r.completer.Configured()
}

// Evaluate scores all dimensions concurrently and rejoins the results
// in dimension order. An unconfigured rubric returns immediately
// without a single LLM call. Evaluate never fails: broken dimension
// calls degrade to their neutral fallback category.
func (r *Rubric) Evaluate(ctx context.Context, ad Ad) RubricScore {
	createdAt := time.Now().UTC()

	if !r.Configured() {
		r.log.Warn("rubric has no configured provider, skipping evaluation",
			zap.String("rubric", r.Name))
		return RubricScore{
			Rubric:      r.Name,
			GesamtLevel: LevelSchlecht,
			CreatedAt:   createdAt,
		}
	}

	categories := make([]CategoryScore, len(r.Dimensions))
	var wg sync.WaitGroup
	for i, dim := range r.Dimensions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			categories[i] = r.scoreDimension(ctx, dim, ad)
		}()
	}
	wg.Wait()

	var total float64
	for i, dim := range r.Dimensions {
		total += categories[i].Score * dim.Weight
	}
	total = math.Round(total*10) / 10

	return RubricScore{
		Rubric:       r.Name,
		IsConfigured: true,
		Categories:   categories,
		GesamtScore:  total,
		GesamtLevel:  LevelForScore(total),
		CreatedAt:    createdAt,
	}
}

func (r *Rubric) scoreDimension(ctx context.Context, dim Dimension, ad Ad) CategoryScore {
	reply, err := r.completer.Complete(ctx, dim.SystemPrompt, dim.UserPrompt(ad), dim.MaxTokens)
	if err != nil {
		r.log.Error("dimension scoring failed",
			zap.String("rubric", r.Name),
			zap.String("dimension", dim.ID),
			zap.Error(err))
		return ErrorCategory(dim.ID, dim.Name)
	}
	return ParseScoreResponse(strings.TrimSpace(reply), dim.ID, dim.Name)
}
