package theme

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"light", Light, false},
		{"dark", Dark, false},
		{" Dark\n", Dark, false},
		{"", "", true},
		{"system", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParseMode(%q) error %v should wrap ErrInvalidMode", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOther(t *testing.T) {
	if Light.Other() != Dark || Dark.Other() != Light {
		t.Error("Other should swap light and dark")
	}
}

func TestParseGnomeScheme(t *testing.T) {
	tests := []struct {
		out     string
		dark    bool
		wantErr bool
	}{
		{"'prefer-dark'\n", true, false},
		{"'prefer-light'\n", false, false},
		{"'default'", false, false},
		{"'high-contrast'", false, true},
	}

	for _, tt := range tests {
		dark, err := parseGnomeScheme(tt.out)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseGnomeScheme(%q) error = %v, wantErr %v", tt.out, err, tt.wantErr)
		}
		if dark != tt.dark {
			t.Errorf("parseGnomeScheme(%q) = %v, want %v", tt.out, dark, tt.dark)
		}
	}
}
