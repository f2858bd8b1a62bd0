package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hospitek/medequip-backend/internal/model"
)

func TestResolveRecipients_MergeAndDedupe(t *testing.T) {
	client := model.Client{Email: "a@x.com", Email2: "a@x.com"}
	staff := []string{"b@x.com", "", "a@x.com"}

	got := ResolveRecipients(client, staff, "")

	assert.Equal(t, []string{"a@x.com", "b@x.com"}, got)
}

func TestResolveRecipients_DropsEmptyClientEmails(t *testing.T) {
	client := model.Client{Email: "a@x.com"}

	got := ResolveRecipients(client, nil, "")

	assert.Equal(t, []string{"a@x.com"}, got)
}

func TestResolveRecipients_CaseSensitive(t *testing.T) {
	client := model.Client{Email: "A@x.com", Email2: "a@x.com"}

	got := ResolveRecipients(client, nil, "")

	// Dedupe is by exact string match, matching what the mailer receives.
	assert.Equal(t, []string{"A@x.com", "a@x.com"}, got)
}

func TestResolveRecipients_OverrideReplacesList(t *testing.T) {
	client := model.Client{Email: "a@x.com", Email2: "c@x.com"}
	staff := []string{"b@x.com"}

	got := ResolveRecipients(client, staff, "test@internal.example")

	assert.Equal(t, []string{"test@internal.example"}, got)
}
