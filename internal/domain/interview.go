package domain

import (
	"strings"
	"time"
)

// InterviewStyle is the conversational register questions are asked in.
type InterviewStyle string

const (
	StyleConversational InterviewStyle = "conversational"
	StyleStructured     InterviewStyle = "structured"
	StyleTechnical      InterviewStyle = "technical"
)

// Difficulty is the target difficulty of generated questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const DefaultMaxDurationMinutes = 30

var (
	interviewStyles = []string{string(StyleConversational), string(StyleStructured), string(StyleTechnical)}
	difficulties    = []string{string(DifficultyEasy), string(DifficultyMedium), string(DifficultyHard)}
)

// InterviewConfig describes the role an interview is held for.
type InterviewConfig struct {
	RoleTitle          string         `json:"role_title"`
	JobDescription     string         `json:"job_description"`
	RequiredSkills     []string       `json:"required_skills"`
	ExperienceLevel    string         `json:"experience_level"`
	InterviewStyle     InterviewStyle `json:"interview_style,omitempty"`
	MaxDurationMinutes int            `json:"max_duration_minutes,omitempty"`
	Difficulty         Difficulty     `json:"difficulty,omitempty"`
}

// WithDefaults returns a copy with unset optional fields filled in.
func (c InterviewConfig) WithDefaults() InterviewConfig {
	if c.InterviewStyle == "" {
		c.InterviewStyle = StyleConversational
	}
	if c.MaxDurationMinutes == 0 {
		c.MaxDurationMinutes = DefaultMaxDurationMinutes
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyMedium
	}
	return c
}

// Validate checks a config that already had defaults applied.
func (c InterviewConfig) Validate() ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(c.RoleTitle) == "" {
		errs = append(errs, NewMissingFieldError("role_title"))
	}
	if strings.TrimSpace(c.ExperienceLevel) == "" {
		errs = append(errs, NewMissingFieldError("experience_level"))
	}
	if !contains(interviewStyles, string(c.InterviewStyle)) {
		errs = append(errs, NewInvalidChoiceError("interview_style", c.InterviewStyle, interviewStyles))
	}
	if !contains(difficulties, string(c.Difficulty)) {
		errs = append(errs, NewInvalidChoiceError("difficulty", c.Difficulty, difficulties))
	}
	if c.MaxDurationMinutes <= 0 {
		errs = append(errs, ValidationError{
			Field:   "max_duration_minutes",
			Code:    CodeOutOfRange,
			Message: "max_duration_minutes must be greater than 0",
			Value:   c.MaxDurationMinutes,
		})
	}
	return errs
}

// CandidateInfo is what is known about the interviewee, usually extracted from a resume.
type CandidateInfo struct {
	Name                string           `json:"name"`
	ResumeID            string           `json:"resume_id,omitempty"`
	ExtractedExperience []map[string]any `json:"extracted_experience,omitempty"`
	ExtractedEducation  []map[string]any `json:"extracted_education,omitempty"`
	ExtractedSkills     []string         `json:"extracted_skills,omitempty"`
}

// InterviewResponse pairs a question with the reference answer and what the candidate said.
type InterviewResponse struct {
	Question          string `json:"question"`
	ModelAnswer       string `json:"model_answer"`
	CandidateResponse string `json:"candidate_response"`
}

// EvaluationScores holds the token overlap metrics of one answer.
type EvaluationScores struct {
	Recall    float64 `json:"recall"`
	Precision float64 `json:"precision"`
	F1Score   float64 `json:"f1_score"`
}

// FeedbackOutput is returned to the caller after scoring an answer.
type FeedbackOutput struct {
	Question string           `json:"question"`
	Scores   EvaluationScores `json:"scores"`
}

// Conversation roles recorded in a session transcript.
const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
	RoleSystem      = "system"
)

// ConversationTurn is one line of an interview transcript.
type ConversationTurn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at,omitempty"`
}

// InterviewSession is an explicit, per-interview conversation state.
type InterviewSession struct {
	ID        string             `json:"id"`
	Config    InterviewConfig    `json:"config"`
	Candidate CandidateInfo      `json:"candidate"`
	History   []ConversationTurn `json:"history"`
	CreatedAt time.Time          `json:"created_at"`
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
