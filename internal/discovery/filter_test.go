package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	ids := []string{
		"example.com/app.TestUser",
		"example.com/app.TestPayment",
		"example.com/app/order.TestOrder",
		"example.com/app/payment.TestPaymentService",
	}

	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{name: "empty pattern returns all", pattern: "", expected: 4},
		{name: "exact wildcard", pattern: "TestUser", expected: 1},
		{name: "wildcard suffix", pattern: "*Order", expected: 1},
		{name: "wildcard substring", pattern: "*Payment*", expected: 2},
		{name: "simple contains match", pattern: "Service", expected: 1},
		{name: "package path is not matched", pattern: "example", expected: 0},
		{name: "no matches", pattern: "*NonExistent*", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(ids, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d: %v", tt.expected, len(result), result)
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty test list", func(t *testing.T) {
		result := filter.FilterByName([]string{}, "*Test")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("parts must appear in order", func(t *testing.T) {
		ids := []string{"pkg.TestUserService", "pkg.TestServiceUser"}
		result := filter.FilterByName(ids, "*User*Service")
		if len(result) != 1 || result[0] != "pkg.TestUserService" {
			t.Errorf("expected only pkg.TestUserService, got %v", result)
		}
	})

	t.Run("only wildcards", func(t *testing.T) {
		result := filter.FilterByName([]string{"pkg.TestA"}, "*")
		if len(result) != 1 {
			t.Errorf("expected * to match, got %v", result)
		}
	})
}
