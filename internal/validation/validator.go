package validation

import (
	"strings"
	"unicode/utf8"

	"virtual-interviewer/internal/domain"
	"virtual-interviewer/internal/util"
)

const (
	MaxAnswerLength   = 10000
	MaxQuestionLength = 2000
	MaxQueryLength    = 1000
	MaxTurns          = 500
	MaxTopK           = 50
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks a required ULID such as a session or resume id.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !util.IsULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}
	return errors
}

// ValidateOptionalID accepts an empty id.
func (v *Validator) ValidateOptionalID(field, id string) domain.ValidationErrors {
	if id == "" {
		return nil
	}
	return v.ValidateID(field, id)
}

// ValidateInterviewResponse bounds the free-text fields of an answer.
func (v *Validator) ValidateInterviewResponse(resp domain.InterviewResponse) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if n := utf8.RuneCountInString(resp.Question); n > MaxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("question", n, 0, MaxQuestionLength))
	}
	if n := utf8.RuneCountInString(resp.ModelAnswer); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("model_answer", n, 0, MaxAnswerLength))
	}
	if n := utf8.RuneCountInString(resp.CandidateResponse); n > MaxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("candidate_response", n, 0, MaxAnswerLength))
	}

	return errors
}

// ValidateResumeRef requires exactly one way of pointing at a resume.
func (v *Validator) ValidateResumeRef(filePath, resumeID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	filePath = strings.TrimSpace(filePath)
	resumeID = strings.TrimSpace(resumeID)
	switch {
	case filePath == "" && resumeID == "":
		errors = append(errors, domain.NewMissingFieldError("file_path"))
	case filePath != "" && resumeID != "":
		errors = append(errors, domain.NewExclusiveFieldsError("file_path", "resume_id"))
	case resumeID != "" && !util.IsULID(resumeID):
		errors = append(errors, domain.NewInvalidFormatError("resume_id", resumeID))
	}

	return errors
}

// ValidateSearchRequest validates a resume similarity search.
func (v *Validator) ValidateSearchRequest(resumeID, query string, topK int) domain.ValidationErrors {
	errors := v.ValidateID("resume_id", resumeID)

	if strings.TrimSpace(query) == "" {
		errors = append(errors, domain.NewMissingFieldError("query"))
	} else if n := utf8.RuneCountInString(query); n > MaxQueryLength {
		errors = append(errors, domain.NewOutOfRangeError("query", n, 1, MaxQueryLength))
	}
	if topK < 0 || topK > MaxTopK {
		errors = append(errors, domain.NewOutOfRangeError("top_k", topK, 1, MaxTopK))
	}

	return errors
}

// ValidateConversation checks a transcript posted for summarization.
func (v *Validator) ValidateConversation(turns []domain.ConversationTurn) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(turns) == 0 {
		return append(errors, domain.NewMissingFieldError("conversation"))
	}
	if len(turns) > MaxTurns {
		return append(errors, domain.NewOutOfRangeError("conversation", len(turns), 1, MaxTurns))
	}
	for _, t := range turns {
		if strings.TrimSpace(t.Role) == "" {
			errors = append(errors, domain.NewMissingFieldError("conversation.role"))
			break
		}
	}

	return errors
}
