package prompt

import (
	"testing"

	"virtual-interviewer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatQuestions(t *testing.T) {
	cfg := domain.InterviewConfig{
		RoleTitle:       "Backend Engineer",
		ExperienceLevel: "senior",
		InterviewStyle:  domain.StyleTechnical,
		Difficulty:      domain.DifficultyHard,
	}
	candidate := domain.CandidateInfo{ExtractedSkills: []string{"Go", "Kubernetes"}}

	got, err := FormatQuestions(cfg, candidate)
	require.NoError(t, err)
	assert.Equal(t, "You are a virtual interviewer for the role of Backend Engineer.\n"+
		"The candidate has senior experience and skills in Go, Kubernetes.\n"+
		"Generate a list of 5 hard difficulty questions in a technical style.", got)
}

func TestFormatQuestions_DefaultsAndSkillFallback(t *testing.T) {
	cfg := domain.InterviewConfig{
		RoleTitle:       "Data Scientist",
		ExperienceLevel: "mid",
		RequiredSkills:  []string{"Python", "SQL"},
	}

	got, err := FormatQuestions(cfg, domain.CandidateInfo{})
	require.NoError(t, err)
	assert.Contains(t, got, "skills in Python, SQL.")
	assert.Contains(t, got, "5 medium difficulty questions in a conversational style.")
}

func TestFormatQuestions_NoEscaping(t *testing.T) {
	cfg := domain.InterviewConfig{RoleTitle: "R&D <Lead>", ExperienceLevel: "5+ years"}

	got, err := FormatQuestions(cfg, domain.CandidateInfo{ExtractedSkills: []string{"C++"}})
	require.NoError(t, err)
	assert.Contains(t, got, "role of R&D <Lead>.")
	assert.Contains(t, got, "skills in C++.")
}

func TestSkills(t *testing.T) {
	cfg := domain.InterviewConfig{RequiredSkills: []string{"Go"}}
	assert.Equal(t, []string{"Go"}, Skills(cfg, domain.CandidateInfo{}))
	assert.Equal(t, []string{"Rust"}, Skills(cfg, domain.CandidateInfo{ExtractedSkills: []string{"Rust"}}))
}

func TestFormatSummary(t *testing.T) {
	turns := []domain.ConversationTurn{
		{Role: domain.RoleInterviewer, Content: "Tell me about yourself."},
		{Role: domain.RoleCandidate, Content: "I build APIs."},
	}

	got, err := FormatSummary(turns)
	require.NoError(t, err)
	assert.Equal(t, "Based on the following interview conversation, summarize the candidate's performance, strengths, and weaknesses:\n"+
		"interviewer: Tell me about yourself.\ncandidate: I build APIs.", got)
}

func TestTranscript_Empty(t *testing.T) {
	assert.Equal(t, "", Transcript(nil))
}
