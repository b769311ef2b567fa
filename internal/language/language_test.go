package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.py", "python"},
		{"src/App.TSX", "typescript"},
		{"include/util.h", "cpp"},
		{"config/app.yml", "yaml"},
		{"notes.txt", ""},
		{"Dockerfile", "dockerfile"},
		{"deploy/Dockerfile", "dockerfile"},
		{".gitignore", "ignore"},
		{"sub/.gitattributes", "ignore"},
		{"templates/go.gitignore", "ignore"},
		{"vendor.gitattributes", "ignore"},
		{".eslintrc.json", "json"},
		{"LICENSE", ""},
		{"archive.unknown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Hint(tt.path))
		})
	}
}
