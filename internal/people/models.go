package people

import "regexp"

// MinNameLen is the shortest acceptable person name.
const MinNameLen = 2

type Person struct {
	Email       string   `json:"email" bson:"_id"`
	Name        string   `json:"name" bson:"name"`
	Affiliation string   `json:"affiliation" bson:"affiliation"`
	Roles       []string `json:"roles" bson:"roles"`
}

// HasRole reports whether the person holds the given role code.
func (p *Person) HasRole(code string) bool {
	for _, r := range p.Roles {
		if r == code {
			return true
		}
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// IsValidEmail checks the email against the journal's email-shape rule.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
