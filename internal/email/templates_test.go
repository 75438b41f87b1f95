package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVerification(t *testing.T) {
	t.Parallel()

	html, err := RenderVerification(VerificationData{
		Name: "Jamie",
		Link: "http://localhost:8080/api/auth/verify-email?token=abc123",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Jamie")
	assert.Contains(t, html, "verify-email?token=abc123")
	assert.Contains(t, html, "24 hours")
}

func TestRenderVerification_EscapesName(t *testing.T) {
	t.Parallel()

	html, err := RenderVerification(VerificationData{
		Name: "<script>alert(1)</script>",
		Link: "http://localhost:8080/api/auth/verify-email?token=abc123",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
}
