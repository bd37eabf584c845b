package errors

import (
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "root", false},
		{"valid with spaces", "a longer label", false},
		{"valid empty", "", false},
		{"valid unicode", "größe", false},

		{"tab", "foo\tbar", true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
		{"too long", strings.Repeat("x", MaxLabelLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTree) {
				t.Errorf("ValidateLabel(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidTree)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	valid := []string{"text", "json"}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"text", "text", false},
		{"json", "json", false},

		{"empty", "", true},
		{"unknown", "svg", true},
		{"case sensitive", "JSON", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, valid)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "tree.json", false},
		{"valid nested", "docs/trees/org.yaml", false},
		{"valid absolute", "/tmp/tree.json", false},

		{"empty", "", true},
		{"too long", "a/" + strings.Repeat("x", 600), true},
		{"null byte", "tree\x00.json", true},
		{"control char", "tree\x01.json", true},
		{"directory", "trees/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
