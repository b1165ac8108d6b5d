package utils

import (
	"html/template"
	"io/fs"

	"github.com/pkg/errors"
)

// LoadTemplate parses the template stored at templatePath in the given file system
func LoadTemplate(templateName string, fsys fs.FS, templatePath string) (*template.Template, error) {
	templateBytes, err := fs.ReadFile(fsys, templatePath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read template file %s", templatePath)
	}

	tmpl, err := template.New(templateName).Parse(string(templateBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse template %s", templateName)
	}

	return tmpl, nil
}
