package validation

import "testing"

func TestValidateTaskCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"math", true},
		{"science", true},
		{"history", true},
		{"language", true},
		{"other", true},
		{"chemistry", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := ValidateTaskCategory(tt.value)
			if tt.valid && err != nil {
				t.Errorf("expected %q valid, got %v", tt.value, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q invalid", tt.value)
			}
		})
	}
}

func TestValidateTaskPriority(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"urgent", "high", "medium", "low", "optional"} {
		if err := ValidateTaskPriority(valid); err != nil {
			t.Errorf("expected %q valid, got %v", valid, err)
		}
	}
	if err := ValidateTaskPriority("critical"); err == nil {
		t.Error("expected 'critical' invalid")
	}
}

func TestValidateRecurrencePattern(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"daily", "weekly", "monthly"} {
		if err := ValidateRecurrencePattern(valid); err != nil {
			t.Errorf("expected %q valid, got %v", valid, err)
		}
	}
	if err := ValidateRecurrencePattern("yearly"); err == nil {
		t.Error("expected 'yearly' invalid")
	}
}

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"removes control characters", "a\x00b\x1fc", "abc"},
		{"keeps newlines and tabs", "line1\nline2\tend", "line1\nline2\tend"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
