package response

import "testing"

func TestNewPaginatedResponse(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of three", 1, 10, 25, 3, true, false},
		{"middle", 2, 10, 25, 3, true, true},
		{"last", 3, 10, 25, 3, false, true},
		{"single page", 1, 20, 5, 1, false, false},
		{"empty", 1, 20, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPaginatedResponse([]string{}, tt.page, tt.perPage, tt.total)
			meta := resp.Pagination

			if meta.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.totalPages)
			}
			if meta.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", meta.HasNext, tt.hasNext)
			}
			if meta.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", meta.HasPrev, tt.hasPrev)
			}
			if meta.CurrentPage != tt.page || meta.PerPage != tt.perPage || meta.Total != tt.total {
				t.Errorf("meta = %+v, echoes wrong inputs", meta)
			}
		})
	}
}

func TestNewPaginatedResponseNilData(t *testing.T) {
	resp := NewPaginatedResponse[string](nil, 1, 20, 0)
	if resp.Data == nil {
		t.Error("Data = nil, want empty slice so it encodes as []")
	}
}
