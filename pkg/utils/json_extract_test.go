package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			"bare object",
			`{"rating":"good"}`,
			`{"rating":"good"}`,
		},
		{
			"markdown fences",
			"```json\n{\"rating\":\"good\"}\n```",
			`{"rating":"good"}`,
		},
		{
			"uppercase fence",
			"```JSON\n{\"a\":1}\n```",
			`{"a":1}`,
		},
		{
			"surrounding prose",
			`Sure! Here is the JSON you asked for: {"rating":"good"} Hope that helps.`,
			`{"rating":"good"}`,
		},
		{
			"nested objects",
			`{"outer":{"inner":{"deep":true}},"after":1}`,
			`{"outer":{"inner":{"deep":true}},"after":1}`,
		},
		{
			"braces inside strings",
			`{"message":"use {curly} braces"}`,
			`{"message":"use {curly} braces"}`,
		},
		{
			"escaped quotes inside strings",
			`{"message":"she said \"hi\" {..}"}`,
			`{"message":"she said \"hi\" {..}"}`,
		},
		{
			"first object wins",
			`{"first":1} {"second":2}`,
			`{"first":1}`,
		},
		{
			"no object",
			"I could not produce JSON, sorry.",
			"",
		},
		{
			"unbalanced",
			`{"rating":"good"`,
			"",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONObject(tt.response))
		})
	}
}
