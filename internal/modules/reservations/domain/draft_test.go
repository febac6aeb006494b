package domain

import (
	"errors"
	"testing"
)

func validDraft() Draft {
	return Draft{
		Date:    "2026-09-12",
		Time:    "7:00 PM",
		Guests:  2,
		TableID: 1,
		Contact: Contact{Name: "John Doe", Email: "john@example.com", Phone: "555-0100"},
	}
}

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*Draft)
		expected error
	}{
		{name: "valid draft", mutate: func(*Draft) {}, expected: nil},
		{name: "missing date", mutate: func(d *Draft) { d.Date = "" }, expected: ErrMissingDate},
		{name: "malformed date", mutate: func(d *Draft) { d.Date = "12/09/2026" }, expected: ErrMissingDate},
		{name: "off-slot time", mutate: func(d *Draft) { d.Time = "4:00 PM" }, expected: ErrInvalidTimeSlot},
		{name: "zero guests", mutate: func(d *Draft) { d.Guests = 0 }, expected: ErrInvalidPartySize},
		{name: "too many guests", mutate: func(d *Draft) { d.Guests = 9 }, expected: ErrInvalidPartySize},
		{name: "unknown table", mutate: func(d *Draft) { d.TableID = 42 }, expected: ErrUnknownTable},
		{name: "undersized table", mutate: func(d *Draft) { d.Guests = 4 }, expected: ErrTableTooSmall},
		{name: "missing name", mutate: func(d *Draft) { d.Contact.Name = "  " }, expected: ErrMissingContact},
		{name: "missing email", mutate: func(d *Draft) { d.Contact.Email = "" }, expected: ErrMissingContact},
		{name: "missing phone", mutate: func(d *Draft) { d.Contact.Phone = "" }, expected: ErrMissingContact},
		{name: "malformed email", mutate: func(d *Draft) { d.Contact.Email = "not-an-email" }, expected: ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			err := draft.Validate()
			if tc.expected == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
			if !errors.Is(err, ErrInvalidDraft) {
				t.Fatalf("expected error to wrap ErrInvalidDraft, got %v", err)
			}
		})
	}
}
