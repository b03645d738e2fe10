package usecase

import (
	"regexp"
	"strings"
)

// emailPattern accepts local-part@domain.tld with a single-label domain and a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@([a-zA-Z0-9-]+\.[a-zA-Z]{2,})$`)

// DefaultAllowedDomains is the allow-list used when none is configured.
var DefaultAllowedDomains = []string{"gmail.com", "yahoo.com", "outlook.com"}

// EmailPolicy validates emails against the syntactic pattern and a domain allow-list.
type EmailPolicy struct {
	allowed map[string]struct{}
}

// NewEmailPolicy builds a policy from the given domains.
// Domains are compared case-insensitively; blank entries are ignored.
// An empty list falls back to DefaultAllowedDomains.
func NewEmailPolicy(domains []string) *EmailPolicy {
	allowed := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		allowed[d] = struct{}{}
	}
	if len(allowed) == 0 {
		for _, d := range DefaultAllowedDomains {
			allowed[d] = struct{}{}
		}
	}
	return &EmailPolicy{allowed: allowed}
}

// Validate checks an already normalized email.
func (p *EmailPolicy) Validate(email string) error {
	m := emailPattern.FindStringSubmatch(email)
	if m == nil {
		return ErrInvalidEmail
	}
	if _, ok := p.allowed[strings.ToLower(m[1])]; !ok {
		return ErrInvalidEmail
	}
	return nil
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Create, update and login all apply it so stored and queried emails agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
