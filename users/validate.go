package users

import "regexp"

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validRoles = map[string]bool{
	"admin":    true,
	"customer": true,
	"seller":   true,
}

// validateUser collects field errors. requirePassword is true on creation,
// where the plaintext password accompanies the payload.
func validateUser(in userInput, requirePassword bool) []string {
	var details []string

	if in.Name == "" {
		details = append(details, "Name is required and cannot be empty")
	}
	if in.Email == "" {
		details = append(details, "Email is required")
	} else if !emailRE.MatchString(in.Email) {
		details = append(details, "Email must be a valid email address")
	}
	if requirePassword {
		if in.Password == "" {
			details = append(details, "Password is required")
		} else if len(in.Password) < 6 {
			details = append(details, "Password must be at least 6 characters long")
		}
	}
	if in.Role != "" && !validRoles[in.Role] {
		details = append(details, "Role must be one of: admin, customer, seller")
	}

	return details
}
