// internal/matching/dto_test.go

package matching

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFindMatchesParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   FindMatchesParams
	}{
		{"defaults", "/matches", FindMatchesParams{}},
		{"all parameters", "/matches?limit=10&location=Warsaw&minScore=62.5", FindMatchesParams{Limit: 10, Location: "Warsaw", MinScore: 62.5}},
		{"malformed limit ignored", "/matches?limit=ten&minScore=50", FindMatchesParams{MinScore: 50}},
		{"malformed minScore ignored", "/matches?limit=5&minScore=high", FindMatchesParams{Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			assert.Equal(t, tt.want, *ParseFindMatchesParams(r))
		})
	}
}
