package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation collapsed", "City Center!!", "city-center"},
		{"already clean", "iron-temple", "iron-temple"},
		{"diacritics folded", "Café Übung", "cafe-ubung"},
		{"inner runs collapsed", "Gold's   Gym -- Downtown", "gold-s-gym-downtown"},
		{"digits kept", "Zone 24/7", "zone-24-7"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
