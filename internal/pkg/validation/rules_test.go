package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "missing@tld", "@nouser.com", "spaces in@mail.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidUserType(t *testing.T) {
	for _, ut := range UserTypes {
		if !IsValidUserType(ut) {
			t.Errorf("expected %q to be valid", ut)
		}
	}
	for _, ut := range []string{"", "Student", "teacher", "admin"} {
		if IsValidUserType(ut) {
			t.Errorf("expected %q to be invalid", ut)
		}
	}
}

func TestIsValidCourseLevel(t *testing.T) {
	for _, lvl := range CourseLevels {
		if !IsValidCourseLevel(lvl) {
			t.Errorf("expected %q to be valid", lvl)
		}
	}
	for _, lvl := range []string{"", "beginner", "Expert"} {
		if IsValidCourseLevel(lvl) {
			t.Errorf("expected %q to be invalid", lvl)
		}
	}
}
