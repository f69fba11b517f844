package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+79161234567", "+1 (415) 555-0133", "4155550133"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{"", "abc", "+0123456", "1"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}
