package inspect

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/mrleemurray/codicon-inspector/assets"
	"github.com/mrleemurray/codicon-inspector/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	Source  string
	Name    string
	Count   int
	Date    string
}

func expandTemplate(res *assets.Resolution, name config.TemplateFieldName, field string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context: string(name),
		Source:  res.Source.String(),
		Name:    res.Name,
		Count:   len(res.Icons),
		Date:    time.Now().Format("2006-01-02"),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
