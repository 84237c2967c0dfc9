package utils

import "testing"

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 20, 5},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		page    int
		perPage int
		want    int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 10, 20},
		{0, 20, 0},
		{-1, 20, 0},
	}

	for _, tt := range tests {
		if got := CalculateOffset(tt.page, tt.perPage); got != tt.want {
			t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.perPage, got, tt.want)
		}
	}
}

func TestClampPageSize(t *testing.T) {
	tests := []struct {
		perPage int
		want    int
	}{
		{0, 20},
		{-5, 20},
		{1, 1},
		{50, 50},
		{100, 100},
		{101, 100},
		{1000, 100},
	}

	for _, tt := range tests {
		if got := ClampPageSize(tt.perPage, 20, 100); got != tt.want {
			t.Errorf("ClampPageSize(%d, 20, 100) = %d, want %d", tt.perPage, got, tt.want)
		}
	}
}
