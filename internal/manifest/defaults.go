package manifest

// Entry is one key of a string-valued manifest mapping.
type Entry struct {
	Key   string
	Value string
}

// DefaultVersion is used when the manifest has no version.
const DefaultVersion = "1.0.0"

// DefaultPrettier is the prettier config written on every run.
const DefaultPrettier = `{"plugins":["prettier-plugin-tailwindcss"]}`

// DefaultDevDependencies are the build and deploy tools.
var DefaultDevDependencies = []Entry{
	{"gh-pages", "^6.3.0"},
	{"prettier", "^3.6.2"},
	{"prettier-plugin-tailwindcss", "^0.7.1"},
	{"vite", "^7.1.12"},
}

// DefaultDependencies are the runtime styling packages.
var DefaultDependencies = []Entry{
	{"@tailwindcss/vite", "^4.1.16"},
	{"tailwindcss", "^4.1.16"},
}

// DefaultScripts wire vite and gh-pages into npm run.
var DefaultScripts = []Entry{
	{"predeploy", "npm run build"},
	{"deploy", "gh-pages -d dist"},
	{"dev", "vite"},
	{"build", "vite build"},
	{"preview", "vite preview"},
}
