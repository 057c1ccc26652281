// Package templates embeds the HTML templates and stylesheet used for
// profile export.
package templates

import (
	"embed"
	"html/template"
)

//go:embed profile.html style.css
var files embed.FS

// Profile parses the profile export template.
func Profile() (*template.Template, error) {
	return template.ParseFS(files, "profile.html")
}

// Style returns the stylesheet inlined into exported documents.
func Style() (template.CSS, error) {
	b, err := files.ReadFile("style.css")
	if err != nil {
		return "", err
	}
	return template.CSS(b), nil
}
