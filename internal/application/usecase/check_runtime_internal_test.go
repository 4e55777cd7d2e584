package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareVersion(t *testing.T) {
	tests := []struct {
		a, b string
		cmp  int
		ok   bool
	}{
		{"2.44.1", "2.40", 1, true},
		{"2.40", "2.40.0", 0, true},
		{"4.8.3", "4.10", -1, true},
		{"1.22.0-rc1", "1.20", 1, true},
		{"", "1.0", 0, false},
		{".1", "1.0", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			cmp, ok := compareVersion(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.cmp, cmp)
			}
		})
	}
}
