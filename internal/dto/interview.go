package dto

import (
	"encoding/json"

	"virtual-interviewer/internal/domain"
)

// MessageResponse is a plain acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// StartInterviewRequest starts a session.
// @Description Either {"config": {...}, "candidate": {...}} or a bare interview config
type StartInterviewRequest struct {
	Config    *domain.InterviewConfig `json:"config,omitempty"`
	Candidate domain.CandidateInfo    `json:"candidate"`
}

// ParseStartInterviewRequest accepts both the wrapped form and a bare
// InterviewConfig object.
func ParseStartInterviewRequest(body []byte) (*StartInterviewRequest, error) {
	var req StartInterviewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	if req.Config != nil {
		return &req, nil
	}

	var cfg domain.InterviewConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		return nil, err
	}
	req.Config = &cfg
	return &req, nil
}

// StartInterviewResponse acknowledges a new session.
type StartInterviewResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// AnswerRequest carries one question/answer exchange.
// @Description Request body for /interview/ask and /interview/score
type AnswerRequest struct {
	SessionID string `json:"session_id,omitempty"`
	domain.InterviewResponse
}

// FollowUpResponse is returned by /interview/ask.
type FollowUpResponse struct {
	FollowUp string `json:"follow_up"`
}

// QuestionsRequest asks for generated questions either for a session or for
// an ad-hoc config.
type QuestionsRequest struct {
	SessionID string                  `json:"session_id,omitempty"`
	Config    *domain.InterviewConfig `json:"config,omitempty"`
	Candidate *domain.CandidateInfo   `json:"candidate,omitempty"`
}

type QuestionsResponse struct {
	Questions string `json:"questions"`
}

// SummaryRequest summarizes a session or a posted transcript.
type SummaryRequest struct {
	SessionID    string                    `json:"session_id,omitempty"`
	Conversation []domain.ConversationTurn `json:"conversation,omitempty"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
