package domain

import "testing"

func TestCatalog(t *testing.T) {
	categories := Catalog()
	if len(categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(categories))
	}
	seen := make(map[int]struct{})
	for _, category := range categories {
		if len(category.Items) == 0 {
			t.Fatalf("category %q has no items", category.ID)
		}
		for _, item := range category.Items {
			if _, dup := seen[item.ID]; dup {
				t.Fatalf("duplicate item id %d", item.ID)
			}
			seen[item.ID] = struct{}{}
			if item.Price <= 0 {
				t.Fatalf("item %d has non-positive price %d", item.ID, item.Price)
			}
		}
	}
}

func TestFindItem(t *testing.T) {
	cases := []struct {
		name  string
		id    int
		found bool
	}{
		{name: "first item", id: 1, found: true},
		{name: "last item", id: 12, found: true},
		{name: "unknown item", id: 99, found: false},
		{name: "zero id", id: 0, found: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, ok := FindItem(tc.id)
			if ok != tc.found {
				t.Fatalf("expected found=%v, got %v", tc.found, ok)
			}
			if ok && item.ID != tc.id {
				t.Fatalf("expected id %d, got %d", tc.id, item.ID)
			}
		})
	}
}
