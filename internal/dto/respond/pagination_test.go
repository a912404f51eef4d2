package respond

import (
	"testing"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     Pagination
	}{
		{"empty", 1, 20, 0, Pagination{1, 0, 0, 20}},
		{"single partial page", 1, 20, 5, Pagination{1, 1, 5, 20}},
		{"exact boundary", 1, 20, 40, Pagination{1, 2, 40, 20}},
		{"one over boundary", 2, 20, 41, Pagination{2, 3, 41, 20}},
		{"page below one normalized", 0, 10, 10, Pagination{1, 1, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.pageSize, tt.total)
			if got != tt.want {
				t.Errorf("NewPagination(%d, %d, %d) = %+v, want %+v",
					tt.page, tt.pageSize, tt.total, got, tt.want)
			}
		})
	}
}
