package reminder

import "github.com/hospitek/medequip-backend/internal/model"

// ResolveRecipients merges the client's contact emails with the opted-in
// staff emails, drops empty entries, and dedupes by exact match. A non-empty
// override replaces the whole list; it is set for non-production runs so real
// clients are never emailed from a test environment.
func ResolveRecipients(client model.Client, staffEmails []string, override string) []string {
	if override != "" {
		return []string{override}
	}

	candidates := make([]string, 0, 2+len(staffEmails))
	candidates = append(candidates, client.Email, client.Email2)
	candidates = append(candidates, staffEmails...)

	seen := make(map[string]bool, len(candidates))
	var recipients []string
	for _, email := range candidates {
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		recipients = append(recipients, email)
	}

	return recipients
}
