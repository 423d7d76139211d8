package manifest

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"truncated", `{"name": "x"`, "invalid JSON"},
		{"empty", ``, "invalid JSON"},
		{"array", `["name"]`, "top-level value is not an object"},
		{"string", `"package"`, "top-level value is not an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.ErrorIs(t, err, ErrParse)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.reason, perr.Reason)
		})
	}
}

func TestLoad_ParseErrorCarriesPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/package.json", []byte("{oops"), 0644))

	_, err := Load(fs, "/proj/package.json")
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "/proj/package.json")
}

func TestLoad_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Load(fs, "/proj/package.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestSetRaw_KeepsPositionOrAppends(t *testing.T) {
	m, err := Parse([]byte(`{"a": 1, "b": 2}`))
	require.NoError(t, err)

	require.NoError(t, m.SetString("a", "one"))
	require.NoError(t, m.SetRaw("c", []byte(`{"x":true}`)))

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, "one", m.Get("a").String())
	assert.True(t, m.Get("c.x").Bool())
}

func TestBytes_TwoSpaceIndentNoTrailingNewline(t *testing.T) {
	m, err := Parse([]byte(`{"name":"x","keywords":[],"nested":{"list":["a","b"]},"n":1.50}`))
	require.NoError(t, err)

	got, err := m.Bytes()
	require.NoError(t, err)

	want := `{
  "name": "x",
  "keywords": [],
  "nested": {
    "list": [
      "a",
      "b"
    ]
  },
  "n": 1.50
}`
	assert.Equal(t, want, string(got))
}

func TestSave_DoesNotEscapeHTML(t *testing.T) {
	fs := afero.NewMemMapFs()
	m, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	require.NoError(t, m.SetString("description", "Tom & Jerry <3"))

	require.NoError(t, Save(fs, "/proj/package.json", m))

	data, err := afero.ReadFile(fs, "/proj/package.json")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"description\": \"Tom & Jerry <3\"\n}", string(data))
}
