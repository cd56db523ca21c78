package models

import "testing"

func TestIdentityKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Amul Milk 1L", "amul milk 1l"},
		{"trims", "  Amul Milk 1L  ", "amul milk 1l"},
		{"preservesInnerSpacing", "Amul  Milk", "amul  milk"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IdentityKey(tc.in); got != tc.want {
				t.Fatalf("IdentityKey(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLocationDiscriminator(t *testing.T) {
	cases := []struct {
		name string
		loc  *Location
		want string
	}{
		{"nil", nil, ""},
		{"empty", &Location{}, ""},
		{"pincodeOnly", &Location{Pincode: "560001"}, "560001"},
		{"cityOnly", &Location{City: "Bengaluru"}, "bengaluru"},
		{"pincodeWinsOverCity", &Location{City: "Bengaluru", Pincode: "560001"}, "560001"},
		{"cityTrimmed", &Location{City: "  Mumbai "}, "mumbai"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.loc.Discriminator(); got != tc.want {
				t.Fatalf("Discriminator() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScrapeErrorFormatting(t *testing.T) {
	err := NewScrapeError(ErrCodeNavigationTimeout, "search page navigation failed", nil)
	if err.Error() != "navigation_timeout: search page navigation failed" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}

	if !IsCode(err, ErrCodeNavigationTimeout) {
		t.Fatal("IsCode should match the error's own code")
	}
	if IsCode(err, ErrCodeGlobalTimeout) {
		t.Fatal("IsCode should reject other codes")
	}
}
