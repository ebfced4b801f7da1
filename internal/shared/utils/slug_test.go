package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "punctuation stripped and spaces hyphenated",
			input: "Getting Started: A Student's Journey!",
			want:  "getting-started-a-students-journey",
		},
		{
			name:  "already a slug",
			input: "network-security-basics",
			want:  "network-security-basics",
		},
		{
			name:  "uppercase lowered",
			input: "My First Python Security Tool",
			want:  "my-first-python-security-tool",
		},
		{
			name:  "hyphen runs collapsed",
			input: "red  team -- exercise",
			want:  "red-team-exercise",
		},
		{
			name:  "leading and trailing separators trimmed",
			input: "  -hello world-  ",
			want:  "hello-world",
		},
		{
			name:  "digits preserved",
			input: "Top 10 OWASP Risks (2024)",
			want:  "top-10-owasp-risks-2024",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "!!!???",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}
