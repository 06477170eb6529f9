package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobtimizer/jobtimizer/internal/model"
	"github.com/jobtimizer/jobtimizer/internal/scoring"
)

type stubScoreStore struct {
	created   *model.JobAdScore
	createErr error
	history   []model.JobAdScore
}

func (s *stubScoreStore) CreateScore(score *model.JobAdScore) error {
	s.created = score
	return s.createErr
}

func (s *stubScoreStore) FindScoresByUser(_ string, _ int) ([]model.JobAdScore, error) {
	return s.history, nil
}

func (s *stubScoreStore) CountScoresByUser(_ string) (int64, error) {
	return int64(len(s.history)), nil
}

type fixedCompleter struct{ reply string }

func (f *fixedCompleter) Complete(_ context.Context, _, _ string, _ int) (string, error) {
	return f.reply, nil
}

func (f *fixedCompleter) Configured() bool { return true }

func newTestUsecase(store ScoreStore, expertCompleter scoring.Completer) *ScoringUsecase {
	log := zap.NewNop()
	completer := &fixedCompleter{reply: "75|Solide Struktur|Mehr Details,Konkreter formulieren"}
	stepstone := scoring.NewStepstoneRubric(completer, log)
	expert := scoring.NewExpertRubric(expertCompleter, log)
	return NewScoringUsecase(store, stepstone, expert, log)
}

func TestScoreCompleteRunsBothRubrics(t *testing.T) {
	store := &stubScoreStore{}
	uc := newTestUsecase(store, &fixedCompleter{reply: "80|Gut|Mehr Benefits"})

	result := uc.ScoreComplete(context.Background(), "user-1", "Entwickler (m/w/d)", "Anzeigentext")

	require.NotNil(t, result)
	assert.True(t, result.StepstoneScore.IsConfigured)
	assert.True(t, result.ExpertScore.IsConfigured)
	assert.Equal(t, 75.0, result.StepstoneScore.GesamtScore)
	assert.Equal(t, 80.0, result.ExpertScore.GesamtScore)
	assert.Equal(t, scoring.LevelGut, result.StepstoneScore.GesamtLevel)
	assert.Equal(t, time.UTC, result.CreatedAt.Location())
}

func TestScoreCompletePersistsRecord(t *testing.T) {
	store := &stubScoreStore{}
	uc := newTestUsecase(store, &fixedCompleter{reply: "80|Gut|Mehr Benefits"})

	result := uc.ScoreComplete(context.Background(), "user-1", "Entwickler (m/w/d)", "Anzeigentext")

	require.NotNil(t, store.created)
	assert.Equal(t, "user-1", store.created.UserID)
	assert.Equal(t, result.StepstoneScore.GesamtScore, store.created.GesamtScore)
	assert.Equal(t, string(result.StepstoneScore.GesamtLevel), store.created.GesamtLevel)

	var persisted scoring.RubricScore
	require.NoError(t, json.Unmarshal([]byte(store.created.StepstoneScore), &persisted))
	assert.Equal(t, "stepstone", persisted.Rubric)
	assert.Len(t, persisted.Categories, 9)
}

func TestScoreCompletePersistFailureStillReturnsResult(t *testing.T) {
	store := &stubScoreStore{createErr: errors.New("db down")}
	uc := newTestUsecase(store, &fixedCompleter{reply: "80|Gut|Mehr Benefits"})

	result := uc.ScoreComplete(context.Background(), "user-1", "Entwickler (m/w/d)", "Anzeigentext")

	require.NotNil(t, result)
	assert.Equal(t, 75.0, result.StepstoneScore.GesamtScore)
	assert.Equal(t, 80.0, result.ExpertScore.GesamtScore)
}

func TestScoreCompleteUnconfiguredExpertRubric(t *testing.T) {
	store := &stubScoreStore{}
	uc := newTestUsecase(store, nil)

	result := uc.ScoreComplete(context.Background(), "user-1", "Entwickler (m/w/d)", "Anzeigentext")

	assert.True(t, result.StepstoneScore.IsConfigured)
	assert.False(t, result.ExpertScore.IsConfigured)
	assert.Empty(t, result.ExpertScore.Categories)
}

func TestGetScoreHistory(t *testing.T) {
	store := &stubScoreStore{history: []model.JobAdScore{
		{UserID: "user-1", JobTitle: "Entwickler (m/w/d)"},
	}}
	uc := newTestUsecase(store, nil)

	history, err := uc.GetScoreHistory("user-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Entwickler (m/w/d)", history[0].JobTitle)

	count, err := uc.CountScores("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
