package auth

import "strings"

// AdminPolicy is the set of email addresses permitted to obtain an admin
// account through federated login. It is injected from configuration so a
// deployment can swap the allow-list without a rebuild.
type AdminPolicy struct {
	allowed map[string]struct{}
}

// NewAdminPolicy builds a policy from a list of emails. Matching is
// case-insensitive; blank entries are ignored.
func NewAdminPolicy(emails []string) AdminPolicy {
	allowed := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}
	return AdminPolicy{allowed: allowed}
}

// Allows reports whether the email may hold an admin account.
func (p AdminPolicy) Allows(email string) bool {
	_, ok := p.allowed[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
