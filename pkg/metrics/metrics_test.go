package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		name      string
		fieldPath string
		expected  string
	}{
		{
			name:      "plain field passes through",
			fieldPath: "name",
			expected:  "name",
		},
		{
			name:      "list index is stripped",
			fieldPath: "techs[0].title",
			expected:  "techs.title",
		},
		{
			name:      "multi-digit index is stripped",
			fieldPath: "techs[17].knowledge",
			expected:  "techs.knowledge",
		},
		{
			name:      "aggregate list field",
			fieldPath: "techs",
			expected:  "techs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FieldLabel(tt.fieldPath))
		})
	}
}
