// Package scoring measures how much of an ideal answer a candidate answer covers.
package scoring

import (
	"errors"
	"strings"

	"virtual-interviewer/internal/domain"
)

// Epsilon keeps the F1 denominator away from zero when both recall and precision are 0.
const Epsilon = 1e-6

// ErrEmptyIdealAnswer is wrapped by ScoreAnswer when the ideal answer has no tokens.
var ErrEmptyIdealAnswer = errors.New("ideal answer has no tokens")

// Tokenize lower-cases s and returns its distinct whitespace-separated tokens.
// Punctuation is kept, so "python," and "python" are different tokens.
func Tokenize(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// ScoreAnswer compares the token sets of the two answers.
//
//	recall    = |common| / |ideal|
//	precision = |common| / |candidate|, 0 for an empty candidate
//	f1        = 2·recall·precision / (recall + precision + Epsilon)
func ScoreAnswer(candidate, ideal string) (domain.EvaluationScores, error) {
	idealTokens := Tokenize(ideal)
	if len(idealTokens) == 0 {
		return domain.EvaluationScores{}, domain.NewInvalidInputError("model answer must contain at least one word", ErrEmptyIdealAnswer)
	}
	candidateTokens := Tokenize(candidate)

	common := 0
	for tok := range candidateTokens {
		if _, ok := idealTokens[tok]; ok {
			common++
		}
	}

	recall := float64(common) / float64(len(idealTokens))
	precision := 0.0
	if len(candidateTokens) > 0 {
		precision = float64(common) / float64(len(candidateTokens))
	}
	f1 := 2 * recall * precision / (recall + precision + Epsilon)

	return domain.EvaluationScores{
		Recall:    recall,
		Precision: precision,
		F1Score:   f1,
	}, nil
}

// Feedback scores a response and packages it with its question.
func Feedback(resp domain.InterviewResponse) (*domain.FeedbackOutput, error) {
	scores, err := ScoreAnswer(resp.CandidateResponse, resp.ModelAnswer)
	if err != nil {
		return nil, err
	}
	return &domain.FeedbackOutput{
		Question: resp.Question,
		Scores:   scores,
	}, nil
}
