package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcomeTemplate(t *testing.T) {
	body, err := renderBody(welcomeTemplate, templateData{Name: "Ada"})
	require.NoError(t, err)
	assert.Contains(t, body, "Hi Ada,")
	assert.Contains(t, body, "Welcome to Courier")
}

func TestResetTemplateIncludesLink(t *testing.T) {
	body, err := renderBody(resetTemplate, templateData{
		Name:     "Ada",
		ResetURL: "https://courier.example.com/reset?token=abc",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "https://courier.example.com/reset?token=abc")
	assert.Contains(t, body, "single use")
}

func TestResetConfirmationTemplate(t *testing.T) {
	body, err := renderBody(resetConfirmationTemplate, templateData{Name: "Ada"})
	require.NoError(t, err)
	assert.Contains(t, body, "changed successfully")
}
