package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/logger"
	"virtual-interviewer/internal/prompt"
	"virtual-interviewer/internal/scoring"
	"virtual-interviewer/internal/util"

	"go.uber.org/zap"
)

// FollowUpQuestion is the fixed follow-up returned by Ask.
const FollowUpQuestion = "Please elaborate on your experience with Python."

// InterviewService runs interviews: session lifecycle, question generation,
// answer scoring and summaries.
type InterviewService interface {
	StartInterview(ctx context.Context, cfg domain.InterviewConfig, candidate domain.CandidateInfo) (*domain.InterviewSession, string, error)
	GetSession(ctx context.Context, id string) (*domain.InterviewSession, error)
	EndInterview(ctx context.Context, id string) error
	GenerateQuestions(ctx context.Context, cfg domain.InterviewConfig, candidate domain.CandidateInfo) (string, error)
	GenerateSessionQuestions(ctx context.Context, sessionID string, candidate *domain.CandidateInfo) (string, error)
	Ask(ctx context.Context, sessionID string, resp domain.InterviewResponse) (string, error)
	ScoreAnswer(ctx context.Context, sessionID string, resp domain.InterviewResponse) (*domain.FeedbackOutput, error)
	Summarize(ctx context.Context, conversation []domain.ConversationTurn) (string, error)
	SummarizeSession(ctx context.Context, sessionID string) (string, error)
}

type interviewService struct {
	generator domain.TextGenerator
	sessions  domain.SessionStore
}

func NewInterviewService(generator domain.TextGenerator, sessions domain.SessionStore) InterviewService {
	return &interviewService{
		generator: generator,
		sessions:  sessions,
	}
}

func validateConfig(cfg domain.InterviewConfig) (domain.InterviewConfig, error) {
	cfg = cfg.WithDefaults()
	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, errs
	}
	return cfg, nil
}

// StartInterview opens a new session and returns it with the acknowledgment message.
func (s *interviewService) StartInterview(ctx context.Context, cfg domain.InterviewConfig, candidate domain.CandidateInfo) (*domain.InterviewSession, string, error) {
	cfg, err := validateConfig(cfg)
	if err != nil {
		return nil, "", err
	}

	session := &domain.InterviewSession{
		ID:        util.NewULID(),
		Config:    cfg,
		Candidate: candidate,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", err
	}

	logger.Get().Info("Interview started",
		zap.String("sessionID", session.ID),
		zap.String("role", cfg.RoleTitle),
		zap.String("style", string(cfg.InterviewStyle)))
	return session, fmt.Sprintf("Interview started for %s", cfg.RoleTitle), nil
}

func (s *interviewService) GetSession(ctx context.Context, id string) (*domain.InterviewSession, error) {
	return s.sessions.Get(ctx, id)
}

// EndInterview disposes of a session. Ending an unknown session is NOT_FOUND.
func (s *interviewService) EndInterview(ctx context.Context, id string) error {
	if _, err := s.sessions.Get(ctx, id); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	logger.Get().Info("Interview ended", zap.String("sessionID", id))
	return nil
}

func (s *interviewService) generate(ctx context.Context, promptText string) (string, error) {
	l := logger.Get()
	l.Debug("Sending prompt to text generator", zap.String("prompt", logger.TruncateForLog(promptText, 300)))

	start := time.Now()
	out, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		l.Error("Text generation failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", domain.ClassifyBackendError("text generation", err)
	}

	l.Debug("Text generated",
		zap.Duration("elapsed", time.Since(start)),
		zap.String("output", logger.TruncateForLog(out, 300)))
	return out, nil
}

// GenerateQuestions returns the raw model text for the question prompt.
func (s *interviewService) GenerateQuestions(ctx context.Context, cfg domain.InterviewConfig, candidate domain.CandidateInfo) (string, error) {
	cfg, err := validateConfig(cfg)
	if err != nil {
		return "", err
	}
	promptText, err := prompt.FormatQuestions(cfg, candidate)
	if err != nil {
		return "", domain.NewInternalError("failed to build question prompt", err)
	}
	return s.generate(ctx, promptText)
}

// GenerateSessionQuestions generates questions for a session's config. A non-nil
// candidate replaces the one stored at start. The exchange is kept in the history.
func (s *interviewService) GenerateSessionQuestions(ctx context.Context, sessionID string, candidate *domain.CandidateInfo) (string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if candidate == nil {
		candidate = &session.Candidate
	}

	promptText, err := prompt.FormatQuestions(session.Config, *candidate)
	if err != nil {
		return "", domain.NewInternalError("failed to build question prompt", err)
	}
	out, err := s.generate(ctx, promptText)
	if err != nil {
		return "", err
	}

	if err := s.sessions.AppendTurns(ctx, sessionID,
		domain.ConversationTurn{Role: domain.RoleSystem, Content: promptText},
		domain.ConversationTurn{Role: domain.RoleInterviewer, Content: out},
	); err != nil {
		return "", err
	}
	return out, nil
}

// Ask records the candidate's reply and returns the follow-up question.
func (s *interviewService) Ask(ctx context.Context, sessionID string, resp domain.InterviewResponse) (string, error) {
	if sessionID == "" {
		return FollowUpQuestion, nil
	}

	var turns []domain.ConversationTurn
	if resp.Question != "" {
		turns = append(turns, domain.ConversationTurn{Role: domain.RoleInterviewer, Content: resp.Question})
	}
	turns = append(turns,
		domain.ConversationTurn{Role: domain.RoleCandidate, Content: resp.CandidateResponse},
		domain.ConversationTurn{Role: domain.RoleInterviewer, Content: FollowUpQuestion},
	)
	if err := s.sessions.AppendTurns(ctx, sessionID, turns...); err != nil {
		return "", err
	}
	return FollowUpQuestion, nil
}

// ScoreAnswer scores the candidate response against the model answer. Scores
// are recorded in the session history only.
func (s *interviewService) ScoreAnswer(ctx context.Context, sessionID string, resp domain.InterviewResponse) (*domain.FeedbackOutput, error) {
	feedback, err := scoring.Feedback(resp)
	if err != nil {
		return nil, err
	}

	if sessionID != "" {
		scores := feedback.Scores
		if err := s.sessions.AppendTurns(ctx, sessionID,
			domain.ConversationTurn{Role: domain.RoleInterviewer, Content: resp.Question},
			domain.ConversationTurn{Role: domain.RoleCandidate, Content: resp.CandidateResponse},
			domain.ConversationTurn{Role: domain.RoleSystem, Content: fmt.Sprintf("recall=%.4f precision=%.4f f1_score=%.4f",
				scores.Recall, scores.Precision, scores.F1Score)},
		); err != nil {
			return nil, err
		}
	}

	logger.Get().Debug("Answer scored",
		zap.String("sessionID", sessionID),
		zap.Float64("f1", feedback.Scores.F1Score))
	return feedback, nil
}

// Summarize returns the raw model summary of an arbitrary transcript.
func (s *interviewService) Summarize(ctx context.Context, conversation []domain.ConversationTurn) (string, error) {
	if len(conversation) == 0 {
		return "", domain.NewInvalidInputError("conversation must contain at least one turn", nil)
	}
	for i, turn := range conversation {
		if strings.TrimSpace(turn.Role) == "" {
			return "", domain.NewInvalidInputError("conversation turn has no role", nil).WithContext("index", i)
		}
	}

	promptText, err := prompt.FormatSummary(conversation)
	if err != nil {
		return "", domain.NewInternalError("failed to build summary prompt", err)
	}
	return s.generate(ctx, promptText)
}

// SummarizeSession summarizes the candidate/interviewer turns of a session.
func (s *interviewService) SummarizeSession(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	turns := make([]domain.ConversationTurn, 0, len(session.History))
	for _, turn := range session.History {
		if turn.Role == domain.RoleSystem {
			continue
		}
		turns = append(turns, turn)
	}
	if len(turns) == 0 {
		return "", domain.NewInvalidInputError("session has no conversation to summarize", nil).WithContext("session_id", sessionID)
	}
	return s.Summarize(ctx, turns)
}
