package scoring

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompleter struct {
	reply string
	err   error
	calls atomic.Int32
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string, _ int) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubCompleter) Configured() bool { return true }

func testDimensions(weights []float64) []Dimension {
	dims := make([]Dimension, len(weights))
	for i, w := range weights {
		dims[i] = Dimension{
			ID:           fmt.Sprintf("dim_%d", i),
			Name:         fmt.Sprintf("Dimension %d", i),
			Weight:       w,
			MaxTokens:    400,
			SystemPrompt: "Bewerte.",
			UserPrompt:   func(ad Ad) string { return ad.Text },
		}
	}
	return dims
}

func TestRubricEvaluateComposite(t *testing.T) {
	stub := &stubCompleter{reply: "75|Solide Struktur|Mehr Details,Konkreter formulieren"}
	third := 1.0 / 3.0
	rubric := NewRubric("test", testDimensions([]float64{third, third, third}), stub, zap.NewNop())

	result := rubric.Evaluate(context.Background(), Ad{Title: "Entwickler (m/w/d)", Text: "Anzeige"})

	assert.True(t, result.IsConfigured)
	assert.Equal(t, 75.0, result.GesamtScore)
	assert.Equal(t, LevelGut, result.GesamtLevel)
	assert.Equal(t, int32(3), stub.calls.Load())
	require.Len(t, result.Categories, 3)
	for i, category := range result.Categories {
		assert.Equal(t, fmt.Sprintf("dim_%d", i), category.ID, "results keep dimension order")
		assert.Equal(t, 75.0, category.Score)
		assert.Equal(t, "Solide Struktur", category.Feedback)
	}
}

func TestRubricEvaluateWeightedComposite(t *testing.T) {
	stub := &stubCompleter{reply: "80|ok|x"}
	rubric := NewRubric("test", testDimensions([]float64{0.7, 0.3}), stub, zap.NewNop())

	result := rubric.Evaluate(context.Background(), Ad{Text: "Anzeige"})

	assert.Equal(t, 80.0, result.GesamtScore)
	assert.Equal(t, LevelGut, result.GesamtLevel)
}

func TestRubricEvaluateUnconfiguredMakesNoCalls(t *testing.T) {
	rubric := NewRubric("test", testDimensions([]float64{1.0}), nil, zap.NewNop())

	result := rubric.Evaluate(context.Background(), Ad{Text: "Anzeige"})

	assert.False(t, result.IsConfigured)
	assert.Empty(t, result.Categories)
	assert.Zero(t, result.GesamtScore)
	assert.False(t, result.CreatedAt.IsZero())
}

func TestRubricEvaluateAllFailuresFallBack(t *testing.T) {
	stub := &stubCompleter{err: fmt.Errorf("provider down")}
	rubric := NewRubric("test", testDimensions([]float64{0.5, 0.5}), stub, zap.NewNop())

	result := rubric.Evaluate(context.Background(), Ad{Text: "Anzeige"})

	assert.True(t, result.IsConfigured)
	assert.Equal(t, 50.0, result.GesamtScore)
	assert.Equal(t, LevelVerbesserungswuerdig, result.GesamtLevel)
	for _, category := range result.Categories {
		assert.Equal(t, 50.0, category.Score)
		assert.Equal(t, []string{"Bitte versuchen Sie es später erneut"}, category.Suggestions)
	}
}

func TestRubricEvaluateMixedFailures(t *testing.T) {
	// One dimension parses, the other degrades to its fallback. The
	// composite still comes out of the weighted sum.
	dims := testDimensions([]float64{0.5, 0.5})
	stub := &flakyCompleter{replies: []string{"90|gut|x"}}
	rubric := NewRubric("test", dims, stub, zap.NewNop())

	result := rubric.Evaluate(context.Background(), Ad{Text: "Anzeige"})

	assert.Equal(t, 70.0, result.GesamtScore)
	assert.Equal(t, LevelGut, result.GesamtLevel)
}

type flakyCompleter struct {
	calls   atomic.Int32
	replies []string
}

func (f *flakyCompleter) Complete(_ context.Context, _, _ string, _ int) (string, error) {
	n := int(f.calls.Add(1)) - 1
	if n < len(f.replies) {
		return f.replies[n], nil
	}
	return "", fmt.Errorf("provider down")
}

func (f *flakyCompleter) Configured() bool { return true }

func TestStepstoneDimensions(t *testing.T) {
	dims := StepstoneDimensions()
	require.Len(t, dims, 9)

	var sum float64
	ids := make(map[string]bool)
	for _, dim := range dims {
		sum += dim.Weight
		ids[dim.ID] = true
		assert.NotEmpty(t, dim.SystemPrompt)
		assert.NotEmpty(t, dim.UserPrompt(Ad{Title: "Titel", Text: "Text"}))
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.True(t, ids["anzeigenkopf"])
	assert.True(t, ids["agg_bias_check"])
}

func TestExpertDimensions(t *testing.T) {
	dims := ExpertDimensions()
	require.Len(t, dims, 4)

	var sum float64
	for _, dim := range dims {
		sum += dim.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestStepstoneExcerptRules(t *testing.T) {
	ad := Ad{Title: "Pflegekraft (m/w/d)", Text: sampleAd}
	dims := StepstoneDimensions()

	byID := make(map[string]Dimension)
	for _, dim := range dims {
		byID[dim.ID] = dim
	}

	assert.Contains(t, byID["anzeigenkopf"].UserPrompt(ad), "JOBTITEL: Pflegekraft (m/w/d)")
	assert.Contains(t, byID["aufgabenbeschreibung"].UserPrompt(ad), "Entwicklung von Backend-Services")
	assert.Contains(t, byID["agg_bias_check"].UserPrompt(ad), sampleAd)
	assert.Contains(t, byID["kontakt_bewerbung"].UserPrompt(ad), "jobs@example.de")
}
