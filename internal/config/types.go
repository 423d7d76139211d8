package config

// DefaultConfigFile is looked up in the project directory when no --config flag is given.
const DefaultConfigFile = ".vite-setup.yaml"

// Defaults used when no config file is present or a field is left empty.
const (
	DefaultPackageManager = "npm"
	DefaultHomepage       = "https://github.com/JVarney03/{{ .Name }}"
	DefaultDescription    = "Auto-generated Vite + Tailwind + gh-pages setup for {{ .Name }}."
)

// Config holds the tunable parts of a run. Everything else is fixed.
//   - PackageManager: binary invoked for `init -y` and `install` (e.g. npm).
//   - Homepage: text/template for the manifest homepage, rendered with the Project.
//   - Description: text/template for the manifest description, used only when the manifest has none.
type Config struct {
	PackageManager string `yaml:"package_manager"`
	Homepage       string `yaml:"homepage"`
	Description    string `yaml:"description"`
}

// Project identifies the frontend project being set up.
// It is derived once from the working directory and passed to every step.
type Project struct {
	Dir  string // Absolute path of the project root
	Name string // Final path segment of Dir
}

// DefaultConfig returns the configuration that reproduces the stock behavior.
func DefaultConfig() Config {
	return Config{
		PackageManager: DefaultPackageManager,
		Homepage:       DefaultHomepage,
		Description:    DefaultDescription,
	}
}

// WithDefaults returns c with every empty field taken from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.PackageManager == "" {
		c.PackageManager = d.PackageManager
	}
	if c.Homepage == "" {
		c.Homepage = d.Homepage
	}
	if c.Description == "" {
		c.Description = d.Description
	}
	return c
}
