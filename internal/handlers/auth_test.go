package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		strong   bool
	}{
		{"abc", false},
		{"Abcdefg1!", true},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigitsHere!", false},
		{"NoSymbols123", false},
		{"Sh0rt!A", false},
		{"Under_score1", true}, // underscore counts as a symbol
	}

	for _, tc := range cases {
		assert.Equal(t, tc.strong, isStrongPassword(tc.password), "password %q", tc.password)
	}
}
