package mysql

import (
	"testing"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantOffset int
		wantLimit  int
	}{
		{"defaults", 0, 0, 0, 20},
		{"negative page", -3, 10, 0, 10},
		{"first page", 1, 20, 0, 20},
		{"second page", 2, 20, 20, 20},
		{"custom size", 3, 50, 100, 50},
		{"clamped to max", 1, 500, 0, 100},
		{"clamped offset uses clamped size", 2, 500, 100, 100},
		{"negative size falls back", 2, -1, 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := NormalizePage(tt.page, tt.pageSize)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.pageSize, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}
