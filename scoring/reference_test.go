package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ReferenceAccuracy(t *testing.T) {
	cases := []struct {
		ref, hyp string
		want     Score
		ok       bool
	}{
		{"Hello, world!", "hello world", 100, true},
		{"the quick brown fox", "the quick brown box", 75, true},
		{"the quick brown fox", "quick brown fox", 75, true},
		{"I can't stop", "i can't stop now", 67, true},
		{"one two", "three four five six", 0, true},
		{"", "anything", 0, false},
		{"?!", "anything", 0, false},
		{"good morning", "", 0, true},
	}

	for _, tc := range cases {
		got, ok := ReferenceAccuracy(tc.ref, tc.hyp)
		assert.Equal(t, tc.ok, ok, tc.ref)
		assert.Equal(t, tc.want, got, "%q vs %q", tc.ref, tc.hyp)
	}
}

func Test_Words(t *testing.T) {
	assert.Equal(t, []string{"it's", "a", "test", "42"}, words("It's a TEST -- 42."))
	assert.Empty(t, words(" ... "))
}
