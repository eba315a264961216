// Package web embeds the HTML templates of the archive page.
package web

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/sbilibin2017/gw-forex-archive/internal/flags"
	"github.com/sbilibin2017/gw-forex-archive/internal/table"
)

//go:embed templates/*
var templateFS embed.FS

// FuncMap holds the helpers available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatRate": table.FormatRate,
		"flag":       flags.Flag,
		"isPriority": table.IsPriority,
	}
}

// LoadTemplates parses every embedded template, each under its file name.
func LoadTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(FuncMap())

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := templateFS.ReadFile(path)
		if err != nil {
			return err
		}

		_, err = tmpl.New(d.Name()).Parse(string(content))
		return err
	})
	if err != nil {
		return nil, err
	}

	return tmpl, nil
}
