package notesv2_test

import (
	"strings"
	"testing"

	"github.com/aretw0/unmangle/pkg/adapters/notesv2"
	"github.com/aretw0/unmangle/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "notes_v2": [
    {
      "title": "Caf\u00c3\u00a9 \"list\"",
      "text": "line one\nline two",
      "created_timestamp": 1700000000,
      "updated_timestamp": 1700000100,
      "tags": [{"name": "food"}, {"name": "todo/later"}],
      "ignored": true
    },
    {
      "title": 42,
      "text": null,
      "created_timestamp": -1,
      "updated_timestamp": 0,
      "tags": []
    }
  ],
  "version": 2
}`

func TestParser_Parse(t *testing.T) {
	doc, err := notesv2.NewParser(nil).Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, doc.Notes, 2)

	first := doc.Notes[0]
	assert.Equal(t, core.RawFragment(`"Caf\u00c3\u00a9 \"list\""`), first.Title, "title must stay verbatim")
	assert.Equal(t, core.RawFragment(`"line one\nline two"`), first.Text)
	assert.Equal(t, int64(1700000000), first.CreatedAt)
	assert.Equal(t, int64(1700000100), first.UpdatedAt)
	assert.Equal(t, []string{"food", "todo/later"}, first.TagNames())

	second := doc.Notes[1]
	assert.Equal(t, core.RawFragment(`42`), second.Title)
	assert.Equal(t, core.RawFragment(`null`), second.Text)
	assert.Equal(t, int64(-1), second.CreatedAt)
	assert.Empty(t, second.Tags)
}

func TestParser_EmptyList(t *testing.T) {
	doc, err := notesv2.NewParser(nil).ParseBytes([]byte(`{"notes_v2": []}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Notes)
}

func TestParser_Malformed(t *testing.T) {
	note := func(fields string) string {
		return `{"notes_v2": [{` + fields + `}]}`
	}
	const full = `"title": "\"a\"", "text": "\"b\"", "created_timestamp": 1, "updated_timestamp": 2, "tags": []`

	tests := []struct {
		name  string
		input string
	}{
		{"Invalid JSON", `{"notes_v2": [`},
		{"Not an object", `[]`},
		{"Missing root", `{"notes": []}`},
		{"Root not array", `{"notes_v2": {}}`},
		{"Note not object", `{"notes_v2": ["x"]}`},
		{"Missing title", note(`"text": "", "created_timestamp": 1, "updated_timestamp": 2, "tags": []`)},
		{"Missing text", note(`"title": "", "created_timestamp": 1, "updated_timestamp": 2, "tags": []`)},
		{"Missing created", note(`"title": "", "text": "", "updated_timestamp": 2, "tags": []`)},
		{"Float timestamp", note(`"title": "", "text": "", "created_timestamp": 1.5, "updated_timestamp": 2, "tags": []`)},
		{"String timestamp", note(`"title": "", "text": "", "created_timestamp": "1", "updated_timestamp": 2, "tags": []`)},
		{"Overflowing timestamp", note(`"title": "", "text": "", "created_timestamp": 99999999999999999999, "updated_timestamp": 2, "tags": []`)},
		{"Missing tags", note(`"title": "", "text": "", "created_timestamp": 1, "updated_timestamp": 2`)},
		{"Tag without name", note(`"title": "", "text": "", "created_timestamp": 1, "updated_timestamp": 2, "tags": [{}]`)},
		{"Tag name not string", note(`"title": "", "text": "", "created_timestamp": 1, "updated_timestamp": 2, "tags": [{"name": 3}]`)},
		{"Trailing garbage", `{"notes_v2": [{` + full + `}]} x`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := notesv2.NewParser(nil).ParseBytes([]byte(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrMalformedDocument)
		})
	}
}
