package json

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/compose-network/filedemo/internal/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string  `json:"name"`
	Grade float64 `json:"grade"`
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	in := []record{{Name: "Alice", Grade: 95}}

	require.NoError(t, NewWriter().WriteJSON(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"Alice\",\n    \"grade\": 95\n  }\n]\n", string(data))

	var out []record
	require.NoError(t, NewReader().ReadJSON(path, &out))
	assert.Equal(t, in, out)
}

func TestReadJSON_Failures(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	tests := []struct {
		name string
		path string
		want outcome.Kind
	}{
		{"missing", filepath.Join(dir, "absent.json"), outcome.NotFound},
		{"syntax", write("syntax.json", `{"name": `), outcome.MalformedContent},
		{"wrong type", write("type.json", `{"name": "A", "grade": "high"}`), outcome.MalformedContent},
		{"unknown field", write("unknown.json", `{"name": "A", "colour": "red"}`), outcome.MalformedContent},
		{"trailing data", write("trailing.json", `{"name": "A"} {"name": "B"}`), outcome.MalformedContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r record
			err := NewReader().ReadJSON(tt.path, &r)
			require.Error(t, err)
			assert.Equal(t, tt.want, outcome.Classify(err))
		})
	}
}
