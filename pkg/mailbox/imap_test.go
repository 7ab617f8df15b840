package mailbox

import (
	"strings"
	"testing"

	"github.com/emersion/go-imap/v2"
	"github.com/go-playground/assert/v2"
)

func TestSnippet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "folds newlines and runs of spaces",
			input: "Hello,\r\n\r\nplease   find the\nreport attached.",
			want:  "Hello, please find the report attached.",
		},
		{
			name:  "empty body gets placeholder",
			input: "   \r\n  ",
			want:  "No content preview available",
		},
		{
			name:  "short body unchanged",
			input: "See you at noon.",
			want:  "See you at noon.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snippet(tt.input, snippetMaxChars)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnippetTruncates(t *testing.T) {
	long := strings.Repeat("word ", 100)

	got := snippet(long, snippetMaxChars)

	assert.Equal(t, snippetMaxChars+3, len(got))
	assert.Equal(t, true, strings.HasSuffix(got, "..."))
}

func TestFormatSender(t *testing.T) {
	named := []imap.Address{{Name: "Ada Lovelace", Mailbox: "ada", Host: "example.com"}}
	bare := []imap.Address{{Mailbox: "ops", Host: "example.com"}}

	assert.Equal(t, "Ada Lovelace <ada@example.com>", formatSender(named))
	assert.Equal(t, "ops@example.com", formatSender(bare))
	assert.Equal(t, "Unknown", formatSender(nil))
}
