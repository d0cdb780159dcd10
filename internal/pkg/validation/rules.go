package validation

import (
	"regexp"
)

// Validation rule patterns and bounds
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Name validation min length
	NameMinLength = 2

	// Password min length
	PasswordMinLength = 6

	// Course field bounds
	TitleMinLength       = 3
	DescriptionMinLength = 10
)

// UserTypes is the closed set of legal userType values.
var UserTypes = []string{"student", "senior", "alumni", "fresher"}

// CourseLevels is the closed set of legal course levels.
var CourseLevels = []string{"Beginner", "Intermediate", "Advanced"}

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the address matches the email pattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidUserType reports whether the value is in the userType closed set
func IsValidUserType(userType string) bool {
	for _, t := range UserTypes {
		if userType == t {
			return true
		}
	}
	return false
}

// IsValidCourseLevel reports whether the value is in the level closed set
func IsValidCourseLevel(level string) bool {
	for _, l := range CourseLevels {
		if level == l {
			return true
		}
	}
	return false
}
