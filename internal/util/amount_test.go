package util

import "testing"

func TestEvaluateAmount(t *testing.T) {
	tests := []struct {
		entry     string
		expected  string
		shouldErr bool
	}{
		// Plain numbers
		{"42", "42.00", false},
		{"42.50", "42.50", false},
		{"$42.50", "42.50", false},
		{"1,234.56", "1234.56", false},
		{" 12.5 ", "12.50", false},

		// Arithmetic
		{"10 + 5", "15.00", false},
		{"19.99 * 2", "39.98", false},
		{"100 / 4", "25.00", false},
		{"(15.50 * 2) + 7.99", "38.99", false},
		{"100 - (25 + 15) * 1.5", "40.00", false},

		// Error cases
		{"", "", true},
		{"10 +", "", true},
		{"lunch", "", true},
		{"10 / 0", "", true},
	}

	for _, test := range tests {
		result, err := EvaluateAmount(test.entry)

		if test.shouldErr {
			if err == nil {
				t.Errorf("expected error for entry %q, got result %q", test.entry, result)
			}
			continue
		}
		if err != nil {
			t.Errorf("unexpected error for entry %q: %v", test.entry, err)
			continue
		}
		if result != test.expected {
			t.Errorf("for entry %q: expected %q, got %q", test.entry, test.expected, result)
		}
	}
}

func TestEvaluateAmountAllowsNegativeResults(t *testing.T) {
	// The evaluator itself is sign-agnostic; rejecting non-positive amounts is
	// the entry form's job.
	result, err := EvaluateAmount("5 - 8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "-3.00" {
		t.Fatalf("expected -3.00, got %q", result)
	}
}
