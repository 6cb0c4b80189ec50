package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/skillpath-backend/internal/clients/gemini"
	roadmapRepos "github.com/yungbote/skillpath-backend/internal/data/repos/roadmap"
	"github.com/yungbote/skillpath-backend/internal/domain/roadmap"
	"github.com/yungbote/skillpath-backend/internal/platform/apierr"
	"github.com/yungbote/skillpath-backend/internal/platform/logger"
)

var (
	// ErrGenerationFailed: roadmap generation output was unusable. Fatal to
	// the operation; nothing is persisted.
	ErrGenerationFailed = errors.New("failed to generate roadmap")
	// ErrChatFailed: no safe default reply exists, so the failure surfaces.
	ErrChatFailed = errors.New("failed to get chat response")
	// ErrScheduleParse: no JSON object found in the schedule response.
	// Recoverable; triggers the deterministic fallback, never surfaced.
	ErrScheduleParse = errors.New("no JSON structure found in schedule response")
)

const explanationFallback = "Failed to generate explanation at this time."

// RoadmapTemplate is a generated plan before it has an id or an owner.
type RoadmapTemplate struct {
	Skill           string          `json:"skill"`
	Description     string          `json:"description"`
	Phases          []roadmap.Phase `json:"phases"`
	CapstoneProject *roadmap.Task   `json:"capstoneProject"`
}

type Explanation struct {
	Explanation string  `json:"explanation"`
	Code        *string `json:"code"`
	Language    *string `json:"language"`
}

type TutorService interface {
	GenerateRoadmap(ctx context.Context, skill string) (*RoadmapTemplate, error)
	ExplainTopic(ctx context.Context, topic, skill string) (*Explanation, error)
	Chat(ctx context.Context, message, skill string) (string, error)
	GenerateSchedule(ctx context.Context, roadmapID, userID uuid.UUID, hoursPerWeek float64) (*roadmap.Roadmap, error)
}

type tutorService struct {
	db          *gorm.DB
	log         *logger.Logger
	ai          gemini.Client
	roadmapRepo roadmapRepos.RoadmapRepo
	now         func() time.Time
}

func NewTutorService(db *gorm.DB, log *logger.Logger, ai gemini.Client, roadmapRepo roadmapRepos.RoadmapRepo) TutorService {
	serviceLog := log.With("service", "TutorService")
	return &tutorService{
		db:          db,
		log:         serviceLog,
		ai:          ai,
		roadmapRepo: roadmapRepo,
		now:         time.Now,
	}
}

func (ts *tutorService) GenerateRoadmap(ctx context.Context, skill string) (*RoadmapTemplate, error) {
	prompt := fmt.Sprintf(`Create a detailed learning roadmap for: %q.
Return ONLY a raw JSON object (no markdown formatting, no backticks) with this structure:
{
  "skill": %q,
  "description": "Short description",
  "phases": [
    {
      "phaseName": "Beginner",
      "estimatedTime": "Time duration",
      "topics": [{"topicName": "Topic 1"}, {"topicName": "Topic 2"}],
      "resources": [{"title": "Resource Title", "url": "URL", "type": "documentation/video/website"}],
      "handsOnProject": {"title": "Project Title", "description": "Short description"}
    }
  ],
  "capstoneProject": {"title": "Capstone Title", "description": "Project description"}
}
Include Beginner, Intermediate and Advanced phases.`, skill, skill)

	text, err := ts.ai.GenerateContent(ctx, prompt)
	if err != nil {
		ts.log.Error("Roadmap generation upstream call failed", "skill", skill, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	cleaned := stripCodeFences(text)
	var template RoadmapTemplate
	if err := json.Unmarshal([]byte(cleaned), &template); err != nil {
		ts.log.Error("Roadmap generation output unparsable", "skill", skill, "error", err, "raw_chars", len(text))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return &template, nil
}

func (ts *tutorService) ExplainTopic(ctx context.Context, topic, skill string) (*Explanation, error) {
	prompt := fmt.Sprintf(`Explain the concept %q in the context of learning %q.

Structure your response exactly like this in valid Markdown:

### Simple Explanation
(Provide a super simple, easy-to-understand explanation using a real-world analogy. ELI5 style. Max 3 sentences.)

### Technical Deep Dive
(Provide the professional, industry-standard technical definition and explanation. Be precise and detailed. Max 3-4 sentences.)

### Key Points
(Provide 2-3 bullet points on why this concept is critical.)

Return ONLY a raw JSON object with this structure:
{
  "explanation": "The full markdown string containing all the sections above",
  "code": "A relevant code snippet example (or null)",
  "language": "programming language name (or null)"
}`, topic, skill)

	text, err := ts.ai.GenerateContent(ctx, prompt)
	if err != nil {
		ts.log.Warn("Explanation upstream call failed, returning fallback", "topic", topic, "error", err)
		return &Explanation{Explanation: explanationFallback}, nil
	}

	var explanation Explanation
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &explanation); err != nil {
		ts.log.Warn("Explanation output unparsable, returning fallback", "topic", topic, "error", err)
		return &Explanation{Explanation: explanationFallback}, nil
	}
	return &explanation, nil
}

func (ts *tutorService) Chat(ctx context.Context, message, skill string) (string, error) {
	prompt := fmt.Sprintf(`You are an expert, super friendly AI tutor helping a beginner student learn %q.
The student asks: %q

Guidelines:
1. Keep it **simple and easy to understand** (ELI5 style).
2. Use **analogies** or real-world examples whenever possible to explain concepts.
3. Use **Markdown** formatting to make it look good (bold key terms, use bullet points for lists).
4. Keep it concise (max 4-5 sentences unless a list is needed).
5. If showing code, use proper code blocks.

Return ONLY the formatted response text.`, skill, message)

	reply, err := ts.ai.GenerateContent(ctx, prompt)
	if err != nil {
		ts.log.Error("Chat upstream call failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrChatFailed, err)
	}
	return reply, nil
}

func (ts *tutorService) GenerateSchedule(ctx context.Context, roadmapID, userID uuid.UUID, hoursPerWeek float64) (*roadmap.Roadmap, error) {
	if hoursPerWeek <= 0 {
		hoursPerWeek = 5
	}

	found, err := ts.roadmapRepo.GetByIDs(ctx, nil, []uuid.UUID{roadmapID})
	if err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	if len(found) == 0 || found[0].UserID != userID {
		return nil, apierr.New(http.StatusNotFound, "not_found", errors.New("roadmap not found"))
	}
	rm := found[0]

	refs := roadmap.FlattenIncompleteTopics(rm)

	schedule, err := ts.requestSchedule(ctx, refs, hoursPerWeek)
	if err != nil {
		// The schedule must always produce a result: switch to the
		// deterministic fallback instead of surfacing the failure.
		ts.log.Warn("AI schedule failed, switching to manual fallback", "roadmap_id", rm.ID, "error", err)
		schedule = fallbackSchedule(len(refs), hoursPerWeek, ts.now())
	}

	updated := roadmap.ApplySchedule(rm, refs, schedule)
	ts.log.Info("Updated topic deadlines", "roadmap_id", rm.ID, "updated", updated, "flattened", len(refs))

	if err := ts.roadmapRepo.Save(ctx, nil, rm); err != nil {
		return nil, fmt.Errorf("save roadmap: %w", err)
	}
	return rm, nil
}

func (ts *tutorService) requestSchedule(ctx context.Context, refs []roadmap.TopicRef, hoursPerWeek float64) (map[string]string, error) {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	nameList, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("marshal topic names: %w", err)
	}

	prompt := fmt.Sprintf(`I have a list of topics to learn:
%s

I have %g hours available per week.

Assign a realistic Deadline (Due Date) for each topic, starting from today (%s).
Assume I learn strictly sequentially, without interruption.

CRITICAL: Return ONLY a JSON object where the KEY is the array index (0, 1, 2...) of the topic, and the VALUE is the date (YYYY-MM-DD).
Example:
{
    "0": "2023-10-25",
    "1": "2023-10-27"
}`, nameList, hoursPerWeek, ts.now().UTC().Format(time.RFC3339))

	text, err := ts.ai.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("schedule upstream call: %w", err)
	}

	jsonStr, ok := extractJSONObject(text)
	if !ok {
		return nil, ErrScheduleParse
	}
	var schedule map[string]string
	if err := json.Unmarshal([]byte(jsonStr), &schedule); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScheduleParse, err)
	}
	return schedule, nil
}
