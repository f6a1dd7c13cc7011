package handler_test

import (
	"context"
	"io"
	"mime/multipart"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/service"
)

// --- Manual Mocks ---

// MockInterviewService
type MockInterviewService struct {
	StartInterviewFunc           func(ctx context.Context, cfg domain.InterviewConfig, candidate domain.CandidateInfo) (*domain.InterviewSession, string, error)
	GetSessionFunc               func(ctx context.Context, id string) (*domain.InterviewSession, error)
	EndInterviewFunc             func(ctx context.Context, id string) error
	GenerateQuestionsFunc        func(ctx context.Context, cfg domain.InterviewConfig, candidate domain.CandidateInfo) (string, error)
	GenerateSessionQuestionsFunc func(ctx context.Context, sessionID string, candidate *domain.CandidateInfo) (string, error)
	AskFunc                      func(ctx context.Context, sessionID string, resp domain.InterviewResponse) (string, error)
	ScoreAnswerFunc              func(ctx context.Context, sessionID string, resp domain.InterviewResponse) (*domain.FeedbackOutput, error)
	SummarizeFunc                func(ctx context.Context, conversation []domain.ConversationTurn) (string, error)
	SummarizeSessionFunc         func(ctx context.Context, sessionID string) (string, error)
}

func (m *MockInterviewService) StartInterview(ctx context.Context, cfg domain.InterviewConfig, candidate domain.CandidateInfo) (*domain.InterviewSession, string, error) {
	if m.StartInterviewFunc != nil {
		return m.StartInterviewFunc(ctx, cfg, candidate)
	}
	panic("MockInterviewService.StartInterviewFunc not implemented")
}
func (m *MockInterviewService) GetSession(ctx context.Context, id string) (*domain.InterviewSession, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, id)
	}
	panic("MockInterviewService.GetSessionFunc not implemented")
}
func (m *MockInterviewService) EndInterview(ctx context.Context, id string) error {
	if m.EndInterviewFunc != nil {
		return m.EndInterviewFunc(ctx, id)
	}
	panic("MockInterviewService.EndInterviewFunc not implemented")
}
func (m *MockInterviewService) GenerateQuestions(ctx context.Context, cfg domain.InterviewConfig, candidate domain.CandidateInfo) (string, error) {
	if m.GenerateQuestionsFunc != nil {
		return m.GenerateQuestionsFunc(ctx, cfg, candidate)
	}
	panic("MockInterviewService.GenerateQuestionsFunc not implemented")
}
func (m *MockInterviewService) GenerateSessionQuestions(ctx context.Context, sessionID string, candidate *domain.CandidateInfo) (string, error) {
	if m.GenerateSessionQuestionsFunc != nil {
		return m.GenerateSessionQuestionsFunc(ctx, sessionID, candidate)
	}
	panic("MockInterviewService.GenerateSessionQuestionsFunc not implemented")
}
func (m *MockInterviewService) Ask(ctx context.Context, sessionID string, resp domain.InterviewResponse) (string, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, sessionID, resp)
	}
	panic("MockInterviewService.AskFunc not implemented")
}
func (m *MockInterviewService) ScoreAnswer(ctx context.Context, sessionID string, resp domain.InterviewResponse) (*domain.FeedbackOutput, error) {
	if m.ScoreAnswerFunc != nil {
		return m.ScoreAnswerFunc(ctx, sessionID, resp)
	}
	panic("MockInterviewService.ScoreAnswerFunc not implemented")
}
func (m *MockInterviewService) Summarize(ctx context.Context, conversation []domain.ConversationTurn) (string, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, conversation)
	}
	panic("MockInterviewService.SummarizeFunc not implemented")
}
func (m *MockInterviewService) SummarizeSession(ctx context.Context, sessionID string) (string, error) {
	if m.SummarizeSessionFunc != nil {
		return m.SummarizeSessionFunc(ctx, sessionID)
	}
	panic("MockInterviewService.SummarizeSessionFunc not implemented")
}

// MockResumeService
type MockResumeService struct {
	UploadFunc  func(ctx context.Context, file *multipart.FileHeader) (*domain.Resume, error)
	StoreFunc   func(ctx context.Context, originalName string, r io.Reader) (*domain.Resume, error)
	ExtractFunc func(ctx context.Context, ref service.ResumeRef) (*service.ExtractResult, error)
	ChunksFunc  func(ctx context.Context, ref service.ResumeRef) ([]string, error)
	SearchFunc  func(ctx context.Context, resumeID, query string, topK int) ([]domain.ChunkMatch, error)
	GetFunc     func(ctx context.Context, id string) (*domain.Resume, error)
}

func (m *MockResumeService) Upload(ctx context.Context, file *multipart.FileHeader) (*domain.Resume, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, file)
	}
	panic("MockResumeService.UploadFunc not implemented")
}
func (m *MockResumeService) Store(ctx context.Context, originalName string, r io.Reader) (*domain.Resume, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, originalName, r)
	}
	panic("MockResumeService.StoreFunc not implemented")
}
func (m *MockResumeService) Extract(ctx context.Context, ref service.ResumeRef) (*service.ExtractResult, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, ref)
	}
	panic("MockResumeService.ExtractFunc not implemented")
}
func (m *MockResumeService) Chunks(ctx context.Context, ref service.ResumeRef) ([]string, error) {
	if m.ChunksFunc != nil {
		return m.ChunksFunc(ctx, ref)
	}
	panic("MockResumeService.ChunksFunc not implemented")
}
func (m *MockResumeService) Search(ctx context.Context, resumeID, query string, topK int) ([]domain.ChunkMatch, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, resumeID, query, topK)
	}
	panic("MockResumeService.SearchFunc not implemented")
}
func (m *MockResumeService) Get(ctx context.Context, id string) (*domain.Resume, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	panic("MockResumeService.GetFunc not implemented")
}
