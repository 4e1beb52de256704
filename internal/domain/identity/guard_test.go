package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantMatch(t *testing.T) {
	tests := []struct {
		name      string
		session   string
		candidate string
		want      bool
	}{
		{"both equal", "tenant-a", "tenant-a", true},
		{"mismatch", "tenant-a", "tenant-b", false},
		{"session empty cannot prove mismatch", "", "tenant-b", true},
		{"candidate empty cannot prove mismatch", "tenant-a", "", true},
		{"both empty", "", "", true},
		{"whitespace treated as absent", "  ", "tenant-b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TenantMatch(tt.session, tt.candidate))
		})
	}
}
