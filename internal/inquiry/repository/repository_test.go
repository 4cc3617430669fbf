package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sortBy        string
		sortDirection string
		want          string
	}{
		{"id", "asc", "id ASC"},
		{"id", "desc", "id DESC"},
		{"status", "DESC", "status DESC"},
		{"customerRefId", "asc", "customer_ref_id ASC"},
		{"note", "", "note ASC"},
		{"", "asc", "id ASC"},
		{"created_at; DROP TABLE inquiries", "asc", "id ASC"},
		{"id", "sideways", "id ASC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, orderClause(tt.sortBy, tt.sortDirection), "sortBy=%q sortDirection=%q", tt.sortBy, tt.sortDirection)
	}
}
