package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FileName is the manifest file at the project root.
const FileName = "package.json"

// ErrParse is matched (errors.Is) by every manifest parse failure.
var ErrParse = errors.New("malformed package manifest")

// ParseError reports why a manifest could not be parsed.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrParse, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, ErrParse, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Manifest is a package.json document kept as raw JSON, so edits keep the
// user's key order and untouched values byte for byte.
type Manifest struct {
	raw []byte
}

// Parse validates data as a JSON object and wraps it.
func Parse(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Reason: "invalid JSON"}
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, &ParseError{Reason: "top-level value is not an object"}
	}
	return &Manifest{raw: append([]byte(nil), data...)}, nil
}

// Load reads and parses the manifest at path.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Save writes m to path with two-space indentation, replacing the file.
func Save(fs afero.Fs, path string, m *Manifest) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Get returns the top-level field key.
func (m *Manifest) Get(key string) gjson.Result {
	return gjson.GetBytes(m.raw, key)
}

// Keys lists the top-level field names in document order.
func (m *Manifest) Keys() []string {
	var keys []string
	gjson.ParseBytes(m.raw).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

// SetRaw replaces the top-level field key with the JSON value raw.
// An existing field keeps its position; a new field is appended.
func (m *Manifest) SetRaw(key string, raw []byte) error {
	updated, err := sjson.SetRawBytes(m.raw, key, raw)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	m.raw = updated
	return nil
}

// SetString replaces the top-level field key with the string value.
func (m *Manifest) SetString(key, value string) error {
	return m.SetRaw(key, encodeString(value))
}

// Bytes renders the document as two-space indented JSON without a trailing newline.
func (m *Manifest) Bytes() ([]byte, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, m.raw); err != nil {
		return nil, fmt.Errorf("failed to compact manifest: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent manifest: %w", err)
	}
	return out.Bytes(), nil
}

// encodeString renders s as a JSON string literal, leaving <, > and & alone.
func encodeString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}
