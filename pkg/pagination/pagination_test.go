package pagination

import "testing"

func TestSlice(t *testing.T) {
	items := make([]int, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, i)
	}

	tests := []struct {
		name      string
		page      int
		perPage   int
		wantLen   int
		wantFirst int
		hasNext   bool
		hasPrev   bool
	}{
		{"first page", 1, 10, 10, 0, true, false},
		{"middle page", 2, 10, 10, 10, true, true},
		{"last partial page", 3, 10, 5, 20, false, true},
		{"page past the end", 5, 10, 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slice(items, &PaginationParams{Page: tt.page, PerPage: tt.perPage})

			if len(result.Items) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(result.Items), tt.wantLen)
			}
			if tt.wantLen > 0 && result.Items[0] != tt.wantFirst {
				t.Errorf("first item = %d, want %d", result.Items[0], tt.wantFirst)
			}
			if result.Pagination.Total != 25 {
				t.Errorf("total = %d, want 25", result.Pagination.Total)
			}
			if result.Pagination.HasNext != tt.hasNext {
				t.Errorf("has_next = %v, want %v", result.Pagination.HasNext, tt.hasNext)
			}
			if result.Pagination.HasPrev != tt.hasPrev {
				t.Errorf("has_prev = %v, want %v", result.Pagination.HasPrev, tt.hasPrev)
			}
		})
	}
}

func TestSliceNormalizesParams(t *testing.T) {
	items := []string{"a", "b", "c"}

	result := Slice(items, &PaginationParams{Page: 0, PerPage: -1})

	if len(result.Items) != 3 {
		t.Fatalf("len = %d, want 3", len(result.Items))
	}
	if result.Pagination.CurrentPage != 1 {
		t.Errorf("current_page = %d, want 1", result.Pagination.CurrentPage)
	}
	if result.Pagination.PerPage != 15 {
		t.Errorf("per_page = %d, want 15", result.Pagination.PerPage)
	}
}

func TestSliceCopiesPage(t *testing.T) {
	items := []int{1, 2, 3}

	result := Slice(items, &PaginationParams{Page: 1, PerPage: 10})
	result.Items[0] = 99

	if items[0] != 1 {
		t.Errorf("source mutated: items[0] = %d", items[0])
	}
}
