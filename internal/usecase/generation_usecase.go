package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jobtimizer/jobtimizer/internal/dto"
	"github.com/jobtimizer/jobtimizer/internal/model"
	"github.com/jobtimizer/jobtimizer/internal/service"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

const generateSystemPrompt = `You are Jobtimizer, an expert system for generating and refining German job advertisements that are 10% Company max, and then about 30% Tasks, Profile and Benefits - depends on the Role & Department.
Your purpose is to help companies create inclusive, professional, and optimized job ads based on ESCO occupational data, company context, user preferences, and seniority levels.

## Core Rules
- Always comply with German AGG (Allgemeines Gleichbehandlungsgesetz):
  - Keine Diskriminierung nach Rasse oder ethnischer Herkunft
  - Geschlecht: immer gendergerechte Formulierungen (z. B. "Mitarbeiter*in", "Kolleg*innen")
  - Religion und Weltanschauung: neutral, diskriminierungsfrei
  - Behinderung: keine Einschränkungen oder diskriminierende Formulierungen
  - Alter: niemals Begriffe wie „junges Team", keine Alterspräferenzen
  - Sexuelle Identität: inklusiv, ohne stereotype Sprache

## Seniority Level Handling
When a seniority level is provided in the job title or additional context:
- Entry Level (0-1 Jahre): Focus on learning opportunities, mentoring, basic requirements
- Junior (1-5 Jahre): Emphasize growth potential, teamwork, foundational skills
- Mid-Level (6-9 Jahre): Highlight project responsibility, technical expertise, leadership potential
- Senior (10+ Jahre): Focus on strategic thinking, mentoring others, complex problem solving

Adjust the entire job ad accordingly:
- Requirements should match the seniority level
- Responsibilities should be appropriate for the experience level
- Language tone should suit the target audience
- Benefits should appeal to professionals at that career stage

## Tone and Experience Scale
- Introduce a Tone/Experience Scale (1–5):
  - 1 = Senior/Expert audience → fachlich anspruchsvoll, detailliert, längere Texte
  - 5 = Entry-level audience → leicht verständlich, zugänglich, kürzere Texte
- Adjust tone, length, and focus automatically based on:
  - Candidate experience level (from seniority level and/or ESCO role)
  - User's feedback (e.g., "make it shorter", "use Du instead of Sie", "focus on teamwork")

## Task
1. Generate a German job advertisement that integrates all inputs and respects seniority level.
2. Ensure consistency across multiple outputs (same formatting, tone scale, compliance).
3. Make the ad professional, human-readable, and ready for publishing.
4. Adapt content complexity and requirements based on seniority level.
5. Mark placeholders clearly if information is missing.

## Output
- Return only the final German job ad text, clean and publishable.
- Use the provided job title exactly as given (including seniority prefix if present).
- Do not explain your reasoning, just output the optimized ad.`

const refineSystemPrompt = `Du bist Jobtimizer und spezialisiert auf die Verfeinerung deutscher Stellenanzeigen basierend auf Nutzerfeedback.

## Wichtige Regeln für die Verfeinerung:
1. Halte die AGG-Konformität ein (keine Diskriminierung nach Geschlecht, Alter, etc.)
2. Behalte das Seniority Level bei - wenn die ursprüngliche Anzeige für "Senior" oder "Junior" Positionen war, passe das Feedback entsprechend an
3. Achte auf angemessene Anforderungen für das Erfahrungslevel
4. Verwende gendergerechte Sprache
5. Halte den professionellen Ton bei

## Bei Seniority-Levels beachten:
- Entry/Junior: Einfachere Sprache, Fokus auf Lernen und Entwicklung
- Mid-Level: Ausgewogene Mischung aus Anforderungen und Entwicklungsmöglichkeiten
- Senior: Anspruchsvollere Sprache, Fokus auf Führung und Expertise

Verfeinere die Stellenanzeige entsprechend dem Feedback, aber halte sie angemessen für das ursprüngliche Seniority Level.`

const generateMaxTokens = 2000

// UserStore is the user persistence surface generation depends on.
type UserStore interface {
	FindUserByID(id string) (*model.User, error)
	UpdatePreferences(id string, preferences string) error
}

// OccupationStore provides vector search over ESCO occupations.
type OccupationStore interface {
	SearchOccupations(embedding pgvector.Vector, topK int) ([]model.Occupation, error)
}

// FeedbackStore persists refinement feedback rounds.
type FeedbackStore interface {
	CreateFeedback(feedback *model.Feedback) error
}

type GenerationUsecase struct {
	userRepo       UserStore
	occupationRepo OccupationStore
	feedbackRepo   FeedbackStore
	completions    service.CompletionProvider
	embeddings     service.EmbeddingProvider
	log            *zap.Logger
}

func NewGenerationUsecase(
	userRepo UserStore,
	occupationRepo OccupationStore,
	feedbackRepo FeedbackStore,
	completions service.CompletionProvider,
	embeddings service.EmbeddingProvider,
	log *zap.Logger,
) *GenerationUsecase {
	return &GenerationUsecase{
		userRepo:       userRepo,
		occupationRepo: occupationRepo,
		feedbackRepo:   feedbackRepo,
		completions:    completions,
		embeddings:     embeddings,
		log:            log,
	}
}

// GenerateJobAd matches the requested title against the ESCO occupation
// index and generates a German job ad from the match, the company
// context and the user's writing preferences.
func (uc *GenerationUsecase) GenerateJobAd(ctx context.Context, req dto.GenerateJobAdRequest) (*dto.JobAdResponse, error) {
	user, err := uc.userRepo.FindUserByID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("benutzer nicht gefunden: %w", err)
	}

	occupation, err := uc.matchOccupation(ctx, req.JobTitle)
	if err != nil {
		return nil, err
	}

	finalJobTitle := req.JobTitle
	seniorityContext := ""
	if req.SeniorityLevel != "" && req.SeniorityYears != "" {
		if seniority, ok := model.SeniorityByLevel(req.SeniorityLevel); ok && seniority.DisplayName != "" {
			finalJobTitle = seniority.DisplayName + " " + req.JobTitle
		}
		seniorityContext = fmt.Sprintf("Seniority Level: %s (%s Erfahrung). ", req.SeniorityLevel, req.SeniorityYears)
	}
	combinedContext := seniorityContext + req.AdditionalContext

	userPrompt := fmt.Sprintf(`Erstelle eine deutsche Stellenanzeige mit folgenden Eingaben:

[JOB TITLE]
%s

[ESCO BERUFSDATEN]
Beruf: %s (ESCO %s)
%s

[UNTERNEHMENSINFORMATIONEN]
%s

[NUTZERPRÄFERENZEN]
%s

[ZUSÄTZLICHER KONTEXT]
%s

Verwende den angegebenen Job Title exakt wie vorgegeben. Falls ein Seniority Level im Titel enthalten ist (z.B. "Senior", "Junior"), passe die gesamte Stellenanzeige entsprechend an das Erfahrungslevel an.`,
		finalJobTitle,
		occupation.Name, occupation.ESCOCode, occupation.Description,
		user.CompanyInfo,
		user.Preferences,
		combinedContext,
	)

	jobAd, err := uc.completions.Complete(ctx, generateSystemPrompt, userPrompt, generateMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("stellenanzeige konnte nicht generiert werden: %w", err)
	}

	uc.log.Info("job ad generated",
		zap.String("user_id", req.UserID),
		zap.String("job_title", finalJobTitle),
		zap.String("esco_match", occupation.Name))

	return &dto.JobAdResponse{
		JobAd: jobAd,
		Occupation: dto.OccupationDTO{
			ESCOCode:    occupation.ESCOCode,
			Name:        occupation.Name,
			Description: occupation.Description,
		},
		GenerationTimestamp: time.Now().UTC(),
		UserID:              req.UserID,
	}, nil
}

// matchOccupation searches for the closest occupation, retrying with
// the first word of the title when the full title yields nothing.
func (uc *GenerationUsecase) matchOccupation(ctx context.Context, jobTitle string) (*model.Occupation, error) {
	if uc.embeddings == nil {
		return nil, fmt.Errorf("embedding provider not configured")
	}

	occupation, err := uc.searchClosest(ctx, jobTitle)
	if err == nil {
		return occupation, nil
	}

	words := strings.Fields(jobTitle)
	if len(words) > 1 {
		if occupation, err = uc.searchClosest(ctx, words[0]); err == nil {
			return occupation, nil
		}
	}

	return nil, fmt.Errorf("keine passende Berufsbezeichnung gefunden für: %s", jobTitle)
}

func (uc *GenerationUsecase) searchClosest(ctx context.Context, query string) (*model.Occupation, error) {
	embedding, err := uc.embeddings.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}
	occupations, err := uc.occupationRepo.SearchOccupations(pgvector.NewVector(embedding), 1)
	if err != nil {
		return nil, err
	}
	if len(occupations) == 0 {
		return nil, fmt.Errorf("no occupation match for %q", query)
	}
	return &occupations[0], nil
}

// SearchJobTitles liefert Autocomplete-Vorschläge über die Vektorsuche.
func (uc *GenerationUsecase) SearchJobTitles(ctx context.Context, query string, limit int) ([]dto.OccupationSuggestion, error) {
	if len(query) < 2 {
		return []dto.OccupationSuggestion{}, nil
	}
	if uc.embeddings == nil {
		return nil, fmt.Errorf("embedding provider not configured")
	}

	embedding, err := uc.embeddings.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}
	occupations, err := uc.occupationRepo.SearchOccupations(pgvector.NewVector(embedding), limit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.OccupationSuggestion, 0, len(occupations))
	for _, occ := range occupations {
		description := occ.Description
		if len([]rune(description)) > 100 {
			description = string([]rune(description)[:100]) + "..."
		}
		suggestions = append(suggestions, dto.OccupationSuggestion{
			Title:        occ.Name + " (m/w/d)",
			OriginalName: occ.Name,
			ESCOCode:     occ.ESCOCode,
			Description:  description,
		})
	}
	return suggestions, nil
}

// RefineJobAd rewrites an ad according to user feedback, stores the
// feedback round and learns preferences from the clicked buttons.
func (uc *GenerationUsecase) RefineJobAd(ctx context.Context, req dto.RefineRequest) (string, error) {
	feedbackJSON, err := json.Marshal(map[string]any{
		"feedback_type":  req.FeedbackType,
		"button_clicks":  req.ButtonClicks,
		"text_feedback":  req.TextFeedback,
		"manual_changes": req.ManualChanges,
	})
	if err != nil {
		return "", err
	}

	userPrompt := fmt.Sprintf(`URSPRÜNGLICHE STELLENANZEIGE:
%s

NUTZERFEEDBACK:
%s

Bitte verfeinere die Stellenanzeige entsprechend diesem Feedback, aber achte darauf, dass das Seniority Level und die damit verbundenen Anforderungen angemessen bleiben.`, req.OriginalAd, string(feedbackJSON))

	refinedAd, err := uc.completions.Complete(ctx, refineSystemPrompt, userPrompt, generateMaxTokens)
	if err != nil {
		return "", fmt.Errorf("stellenanzeige konnte nicht verfeinert werden: %w", err)
	}

	clicksJSON, _ := json.Marshal(req.ButtonClicks)
	feedback := &model.Feedback{
		UserID:        req.UserID,
		JobTitle:      req.JobTitle,
		OriginalAd:    req.OriginalAd,
		RefinedAd:     refinedAd,
		FeedbackType:  req.FeedbackType,
		ButtonClicks:  string(clicksJSON),
		TextFeedback:  req.TextFeedback,
		ManualChanges: req.ManualChanges,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.feedbackRepo.CreateFeedback(feedback); err != nil {
		uc.log.Error("failed to persist feedback",
			zap.String("user_id", req.UserID),
			zap.Error(err))
	}

	uc.learnPreferences(req)

	return refinedAd, nil
}

func (uc *GenerationUsecase) learnPreferences(req dto.RefineRequest) {
	user, err := uc.userRepo.FindUserByID(req.UserID)
	if err != nil {
		uc.log.Warn("preference learning skipped, user not found",
			zap.String("user_id", req.UserID), zap.Error(err))
		return
	}

	var preferences dto.Preferences
	if err := json.Unmarshal([]byte(user.Preferences), &preferences); err != nil {
		preferences = dto.DefaultPreferences()
	}

	if !ApplyFeedback(&preferences, req.ButtonClicks, req.TextFeedback) {
		return
	}

	updated, err := json.Marshal(preferences)
	if err != nil {
		return
	}
	if err := uc.userRepo.UpdatePreferences(req.UserID, string(updated)); err != nil {
		uc.log.Error("failed to update learned preferences",
			zap.String("user_id", req.UserID), zap.Error(err))
		return
	}
	uc.log.Info("preferences updated from feedback", zap.String("user_id", req.UserID))
}

// ApplyFeedback mutates preferences according to feedback button clicks
// and free-text hints. Returns true when anything changed.
func ApplyFeedback(preferences *dto.Preferences, buttonClicks []string, textFeedback string) bool {
	updated := false

	for _, click := range buttonClicks {
		switch click {
		case "mehr_formell":
			preferences.FormalityLevel = "formal"
			updated = true
		case "lockerer":
			preferences.CasualTone = true
			updated = true
		case "mehr_du_ton":
			preferences.Tone = "du"
			updated = true
		case "mehr_sie_ton":
			preferences.Tone = "sie"
			updated = true
		case "mehr_benefits":
			preferences.TemplateCustomizations.IncludeBenefits = true
			updated = true
		}
	}

	if textFeedback != "" {
		text := strings.ToLower(textFeedback)
		if strings.Contains(text, "formell") || strings.Contains(text, "formal") {
			preferences.FormalityLevel = "formal"
			updated = true
		} else if strings.Contains(text, "locker") || strings.Contains(text, "casual") {
			preferences.CasualTone = true
			updated = true
		}
	}

	return updated
}
