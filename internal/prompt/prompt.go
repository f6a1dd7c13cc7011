// Package prompt renders the interviewer prompts sent to the completion backend.
package prompt

import (
	"fmt"
	"strings"

	"virtual-interviewer/internal/domain"

	"github.com/tmc/langchaingo/prompts"
)

var questionTemplate = prompts.NewPromptTemplate(
	"You are a virtual interviewer for the role of {{.role_title}}.\n"+
		"The candidate has {{.experience_level}} experience and skills in {{.skills}}.\n"+
		"Generate a list of 5 {{.difficulty}} difficulty questions in a {{.interview_style}} style.",
	[]string{"role_title", "experience_level", "skills", "difficulty", "interview_style"},
)

var summaryTemplate = prompts.NewPromptTemplate(
	"Based on the following interview conversation, summarize the candidate's performance, strengths, and weaknesses:\n{{.conversation}}",
	[]string{"conversation"},
)

// Skills returns the candidate's extracted skills, or the role's required
// skills when nothing was extracted.
func Skills(cfg domain.InterviewConfig, candidate domain.CandidateInfo) []string {
	if len(candidate.ExtractedSkills) > 0 {
		return candidate.ExtractedSkills
	}
	return cfg.RequiredSkills
}

// FormatQuestions fills the question-generation template.
func FormatQuestions(cfg domain.InterviewConfig, candidate domain.CandidateInfo) (string, error) {
	cfg = cfg.WithDefaults()
	out, err := questionTemplate.Format(map[string]any{
		"role_title":       cfg.RoleTitle,
		"experience_level": cfg.ExperienceLevel,
		"skills":           strings.Join(Skills(cfg, candidate), ", "),
		"difficulty":       string(cfg.Difficulty),
		"interview_style":  string(cfg.InterviewStyle),
	})
	if err != nil {
		return "", fmt.Errorf("format question prompt: %w", err)
	}
	return out, nil
}

// Transcript renders turns as "role: content" lines.
func Transcript(turns []domain.ConversationTurn) string {
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Content))
	}
	return strings.Join(lines, "\n")
}

// FormatSummary fills the summarization template with the rendered transcript.
func FormatSummary(turns []domain.ConversationTurn) (string, error) {
	out, err := summaryTemplate.Format(map[string]any{"conversation": Transcript(turns)})
	if err != nil {
		return "", fmt.Errorf("format summary prompt: %w", err)
	}
	return out, nil
}
