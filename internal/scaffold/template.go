package scaffold

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"vite-setup/internal/config"
)

// TemplateData is what every template sees: {{ .Name }} and {{ .Dir }}.
type TemplateData struct {
	Name string
	Dir  string
}

func dataFor(project config.Project) TemplateData {
	return TemplateData{Name: project.Name, Dir: project.Dir}
}

// Render executes the template text against project with sprig functions available.
func Render(name, text string, project config.Project) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, dataFor(project)); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.String(), nil
}
