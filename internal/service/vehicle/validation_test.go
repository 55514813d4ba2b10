package vehicle

import "testing"

func TestValidPlate(t *testing.T) {
	cases := []struct {
		plate string
		want  bool
	}{
		{"ABC-1234", true},  // legacy with hyphen
		{"ABC1234", true},   // legacy without hyphen
		{"BRA2E19", true},   // Mercosul
		{"XYZ9A87", true},   // Mercosul
		{"abc-1234", false}, // lowercase is rejected, normalization happens before
		{"AB-1234", false},
		{"ABCD-1234", false},
		{"ABC-123", false},
		{"ABC12345", false},
		{"BRA2E1", false},
		{"1234ABC", false},
		{"", false},
	}

	for _, c := range cases {
		if got := validPlate(c.plate); got != c.want {
			t.Errorf("validPlate(%q) = %v, want %v", c.plate, got, c.want)
		}
	}
}

func TestValidChassis(t *testing.T) {
	cases := []struct {
		chassis string
		want    bool
	}{
		{"9C2KC0850PR012345", true},
		{"9C6KE1520NR054321", true},
		{"9C2KC0850PR01234", false},   // 16 chars
		{"9C2KC0850PR0123456", false}, // 18 chars
		{"9C2KC0850IR012345", false},  // contains I
		{"9C2KC0850OR012345", false},  // contains O
		{"9C2KC0850QR012345", false},  // contains Q
		{"", false},
	}

	for _, c := range cases {
		if got := validChassis(c.chassis); got != c.want {
			t.Errorf("validChassis(%q) = %v, want %v", c.chassis, got, c.want)
		}
	}
}

func TestValidRenavam(t *testing.T) {
	cases := []struct {
		renavam string
		want    bool
	}{
		{"12345678901", true},
		{"1234567890", false},   // 10 digits
		{"123456789012", false}, // 12 digits
		{"1234567890a", false},
		{"", false},
	}

	for _, c := range cases {
		if got := validRenavam(c.renavam); got != c.want {
			t.Errorf("validRenavam(%q) = %v, want %v", c.renavam, got, c.want)
		}
	}
}

func TestValidModelYear(t *testing.T) {
	cases := []struct {
		year int
		want bool
	}{
		{1900, true},
		{2030, true},
		{2024, true},
		{1899, false},
		{2031, false},
		{0, false},
	}

	for _, c := range cases {
		if got := validModelYear(c.year); got != c.want {
			t.Errorf("validModelYear(%d) = %v, want %v", c.year, got, c.want)
		}
	}
}

func TestNormalizePlate(t *testing.T) {
	if got := NormalizePlate("  bra2e19 "); got != "BRA2E19" {
		t.Errorf("NormalizePlate = %q, want BRA2E19", got)
	}
}
