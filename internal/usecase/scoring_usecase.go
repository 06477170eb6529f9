package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jobtimizer/jobtimizer/internal/model"
	"github.com/jobtimizer/jobtimizer/internal/scoring"
	"go.uber.org/zap"
)

// ScoreStore is the persistence surface the scoring orchestrator needs.
type ScoreStore interface {
	CreateScore(score *model.JobAdScore) error
	FindScoresByUser(userID string, limit int) ([]model.JobAdScore, error)
	CountScoresByUser(userID string) (int64, error)
}

type ScoringUsecase struct {
	scoreRepo ScoreStore
	stepstone *scoring.Rubric
	expert    *scoring.Rubric
	log       *zap.Logger
}

func NewScoringUsecase(scoreRepo ScoreStore, stepstone, expert *scoring.Rubric, log *zap.Logger) *ScoringUsecase {
	return &ScoringUsecase{scoreRepo: scoreRepo, stepstone: stepstone, expert: expert, log: log}
}

// ScoreComplete runs both rubrics concurrently and returns the full
// record. Persistence is best effort: a failed insert is logged, the
// caller still gets the complete result.
func (uc *ScoringUsecase) ScoreComplete(ctx context.Context, userID, jobTitle, jobAdText string) *scoring.CompleteScore {
	ad := scoring.Ad{Title: jobTitle, Text: jobAdText}

	var stepstoneScore, expertScore scoring.RubricScore
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		stepstoneScore = uc.stepstone.Evaluate(ctx, ad)
	}()
	go func() {
		defer wg.Done()
		expertScore = uc.expert.Evaluate(ctx, ad)
	}()
	wg.Wait()

	result := &scoring.CompleteScore{
		UserID:         userID,
		JobTitle:       jobTitle,
		JobAdText:      jobAdText,
		StepstoneScore: stepstoneScore,
		ExpertScore:    expertScore,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.persistScore(result); err != nil {
		uc.log.Error("failed to persist job ad score",
			zap.String("user_id", userID),
			zap.String("job_title", jobTitle),
			zap.Error(err))
	}

	return result
}

func (uc *ScoringUsecase) persistScore(result *scoring.CompleteScore) error {
	stepstoneJSON, err := json.Marshal(result.StepstoneScore)
	if err != nil {
		return err
	}
	expertJSON, err := json.Marshal(result.ExpertScore)
	if err != nil {
		return err
	}

	record := &model.JobAdScore{
		UserID:         result.UserID,
		JobTitle:       result.JobTitle,
		JobAdText:      result.JobAdText,
		StepstoneScore: string(stepstoneJSON),
		ExpertScore:    string(expertJSON),
		GesamtScore:    result.StepstoneScore.GesamtScore,
		GesamtLevel:    string(result.StepstoneScore.GesamtLevel),
		CreatedAt:      result.CreatedAt,
	}
	return uc.scoreRepo.CreateScore(record)
}

func (uc *ScoringUsecase) GetScoreHistory(userID string, limit int) ([]model.JobAdScore, error) {
	return uc.scoreRepo.FindScoresByUser(userID, limit)
}

func (uc *ScoringUsecase) CountScores(userID string) (int64, error) {
	return uc.scoreRepo.CountScoresByUser(userID)
}
