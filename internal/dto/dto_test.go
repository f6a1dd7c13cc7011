package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartInterviewRequest(t *testing.T) {
	t.Run("wrapped", func(t *testing.T) {
		req, err := ParseStartInterviewRequest([]byte(`{"config":{"role_title":"SRE","experience_level":"junior"},"candidate":{"name":"Kim"}}`))
		require.NoError(t, err)
		assert.Equal(t, "SRE", req.Config.RoleTitle)
		assert.Equal(t, "Kim", req.Candidate.Name)
	})

	t.Run("bare config", func(t *testing.T) {
		req, err := ParseStartInterviewRequest([]byte(`{"role_title":"SRE","experience_level":"junior","difficulty":"hard"}`))
		require.NoError(t, err)
		assert.Equal(t, "SRE", req.Config.RoleTitle)
		assert.Equal(t, "hard", string(req.Config.Difficulty))
		assert.Empty(t, req.Candidate.Name)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseStartInterviewRequest([]byte(`{"role_title":`))
		assert.Error(t, err)
	})
}
