package manifest

import (
	"bytes"

	"github.com/tidwall/gjson"
)

// Values are the tool-provided inputs to Apply.
type Values struct {
	Name        string // used when the manifest has no name
	Version     string // used when the manifest has no version
	Homepage    string // always written
	Description string // used when the manifest has no description
	Prettier    []byte // raw JSON, always written

	DevDependencies []Entry
	Dependencies    []Entry
	Scripts         []Entry
}

// DefaultValues returns Values for a project with the stock dependency set.
// Homepage and Description are left for the caller to render.
func DefaultValues(name string) Values {
	return Values{
		Name:            name,
		Version:         DefaultVersion,
		Prettier:        []byte(DefaultPrettier),
		DevDependencies: DefaultDevDependencies,
		Dependencies:    DefaultDependencies,
		Scripts:         DefaultScripts,
	}
}

// Report describes what Apply had to discard.
type Report struct {
	// Ignored lists mapping fields whose existing value was not a JSON object
	// and therefore contributed nothing to the merge.
	Ignored []string
}

// Apply merges v into m:
//   - name, version and description keep an existing truthy value, else take v's.
//   - homepage and prettier are always overwritten.
//   - devDependencies, dependencies and scripts become v's entries with the
//     existing mapping laid over them, so user values win on key collision.
func Apply(m *Manifest, v Values) (Report, error) {
	var report Report

	if err := setIfAbsent(m, "name", v.Name); err != nil {
		return report, err
	}
	if err := setIfAbsent(m, "version", v.Version); err != nil {
		return report, err
	}
	if err := m.SetString("homepage", v.Homepage); err != nil {
		return report, err
	}
	if err := setIfAbsent(m, "description", v.Description); err != nil {
		return report, err
	}
	if err := m.SetRaw("prettier", v.Prettier); err != nil {
		return report, err
	}

	for _, field := range []struct {
		key      string
		defaults []Entry
	}{
		{"devDependencies", v.DevDependencies},
		{"dependencies", v.Dependencies},
		{"scripts", v.Scripts},
	} {
		merged, ignored := mergeOver(field.defaults, m.Get(field.key))
		if ignored {
			report.Ignored = append(report.Ignored, field.key)
		}
		if err := m.SetRaw(field.key, merged); err != nil {
			return report, err
		}
	}

	return report, nil
}

func setIfAbsent(m *Manifest, key, value string) error {
	if truthy(m.Get(key)) {
		return nil
	}
	return m.SetString(key, value)
}

// truthy follows JavaScript truthiness, which decides whether a field "has a value".
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

// mergeOver builds a JSON object from defaults and then existing: keys come in
// defaults order followed by existing-only keys in their own order, and an
// existing value replaces the default for the same key. The bool result is
// true when existing held something other than an object or null.
func mergeOver(defaults []Entry, existing gjson.Result) ([]byte, bool) {
	type field struct {
		key string
		raw string
	}

	var user []field
	index := make(map[string]int)
	ignored := false

	switch {
	case existing.IsObject():
		existing.ForEach(func(k, val gjson.Result) bool {
			key := k.String()
			if i, dup := index[key]; dup {
				// duplicate keys: first position, last value
				user[i].raw = val.Raw
				return true
			}
			index[key] = len(user)
			user = append(user, field{key: key, raw: val.Raw})
			return true
		})
	case existing.Exists() && existing.Type != gjson.Null:
		ignored = true
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, raw []byte) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(encodeString(key))
		buf.WriteByte(':')
		buf.Write(raw)
	}

	taken := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		if taken[d.Key] {
			continue
		}
		taken[d.Key] = true
		if i, ok := index[d.Key]; ok {
			write(d.Key, []byte(user[i].raw))
			continue
		}
		write(d.Key, encodeString(d.Value))
	}
	for _, f := range user {
		if taken[f.key] {
			continue
		}
		write(f.key, []byte(f.raw))
	}
	buf.WriteByte('}')

	return buf.Bytes(), ignored
}
