package tui

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"testing"

	"github.com/vovakirdan/tui-clicker/internal/game"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000E+00"},
		{0.005, "5.000E-03"},
		{0.01, "0.010"},
		{1, "1.000"},
		{2.5, "2.500"},
		{9999.5, "9999.500"},
		{10000, "10000.000"},
		{12345.678, "1.235E+04"},
		{1e12, "1.000E+12"},
		{-3, "-3.000E+00"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

var (
	fixedShape      = regexp.MustCompile(`^\d+\.\d{3}$`)
	scientificShape = regexp.MustCompile(`^-?\d\.\d{3}E[+-]\d{2,}$`)
)

func TestFormatFloatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 2000 {
		f := math.Pow(10, rng.Float64()*20-6)
		s := FormatFloat(f)

		if !fixedShape.MatchString(s) && !scientificShape.MatchString(s) {
			t.Fatalf("FormatFloat(%v) = %q, unexpected shape", f, s)
		}
		if (f > 1e4 || f < 1e-2) != scientificShape.MatchString(s) {
			t.Fatalf("FormatFloat(%v) = %q, wrong notation", f, s)
		}

		back, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", s, err)
		}
		tolerance := 5e-4
		if scientificShape.MatchString(s) {
			tolerance = 5e-3 * f
		}
		if math.Abs(back-f) > tolerance {
			t.Fatalf("FormatFloat(%v) = %q parses back as %v", f, s, back)
		}
	}
}

func TestShopLine(t *testing.T) {
	u := game.Upgrade{Kind: game.KindIdle, Level: 5, Cost: 2}

	if got, want := shopLine(u, false), "   +Idle; level: 5.00; costs: 2.00"; got != want {
		t.Errorf("shopLine(unselected) = %q, want %q", got, want)
	}
	if got, want := shopLine(u, true), ">> +Idle; level: 5.00; costs: 2.00"; got != want {
		t.Errorf("shopLine(selected) = %q, want %q", got, want)
	}

	a := game.Upgrade{Kind: game.KindActive, Level: 3.14159, Cost: 1234.5}
	if got, want := shopLine(a, false), "   +Active; level: 3.14; costs: 1234.50"; got != want {
		t.Errorf("shopLine(active) = %q, want %q", got, want)
	}
}
