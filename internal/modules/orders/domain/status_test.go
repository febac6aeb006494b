package domain

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		name     string
		input    any
		expected Status
	}{
		{name: "pending", input: "pending", expected: StatusPending},
		{name: "mixed case with spaces", input: " Approved ", expected: StatusApproved},
		{name: "unknown passthrough", input: "refunded", expected: Status("refunded")},
		{name: "non string", input: 7, expected: StatusUnknown},
		{name: "empty", input: "", expected: StatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeStatus(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "pending to approved", from: StatusPending, to: StatusApproved, allowed: true},
		{name: "pending to denied", from: StatusPending, to: StatusDenied, allowed: true},
		{name: "pending to completed", from: StatusPending, to: StatusCompleted, allowed: false},
		{name: "approved to completed", from: StatusApproved, to: StatusCompleted, allowed: true},
		{name: "approved to approved", from: StatusApproved, to: StatusApproved, allowed: false},
		{name: "denied is terminal", from: StatusDenied, to: StatusApproved, allowed: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusApproved, allowed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
				t.Fatalf("expected %v for %s -> %s, got %v", tc.allowed, tc.from, tc.to, got)
			}
		})
	}
}
