package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestConfirmReset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PromptResult
	}{
		{name: "y", input: "y\n", want: PromptResult{Accepted: true}},
		{name: "YES", input: "YES\n", want: PromptResult{Accepted: true}},
		{name: "padded yes", input: "  yes  \n", want: PromptResult{Accepted: true}},
		{name: "n", input: "n\n", want: PromptResult{}},
		{name: "empty line defaults to no", input: "\n", want: PromptResult{}},
		{name: "EOF declines", input: "", want: PromptResult{}},
		{name: "other text", input: "sure\n", want: PromptResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := ConfirmReset(&out, strings.NewReader(tt.input), 3)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "permanently delete 3 activities")
			assert.Contains(t, out.String(), "[y/N]")
		})
	}

	t.Run("read error cancels", func(t *testing.T) {
		got := ConfirmReset(&bytes.Buffer{}, errReader{}, 0)
		assert.True(t, got.Cancelled)
		assert.False(t, got.Accepted)
	})
}
