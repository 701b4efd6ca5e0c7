package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/usecase"
)

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain JSON passes through",
			input:    `{"call_id":"X"}`,
			expected: `{"call_id":"X"}`,
		},
		{
			name:     "fenced with language tag",
			input:    "```json\n{\"call_id\":\"X\"}\n```",
			expected: `{"call_id":"X"}`,
		},
		{
			name:     "fenced without language tag",
			input:    "```\n{\"call_id\":\"X\"}\n```",
			expected: `{"call_id":"X"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n{\"a\":1}\n```\n ",
			expected: `{"a":1}`,
		},
		{
			name:     "fence directly followed by JSON",
			input:    "```{\"a\":1}```",
			expected: `{"a":1}`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, usecase.StripCodeFence(tc.input)).Equal(tc.expected)
		})
	}
}
