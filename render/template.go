package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
)

// DefaultLineTemplate renders one label/value line of the info column.
const DefaultLineTemplate = `{{ label .Label }} {{ .Value }}`

// Line is a label/value pair in the info column.
type Line struct {
	Label string
	Value string
}

func parseLineTemplate(text string, st styler) (*template.Template, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultLineTemplate
	}
	tmpl, err := template.New("line").Funcs(tmplHelpers(st)).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("render: line template: %w", err)
	}
	return tmpl, nil
}

func tmplHelpers(st styler) template.FuncMap {
	fns := template.FuncMap{
		"label": func(s string) string { return st.Label(s + ":") },
		"bold":  st.Label,
	}

	spfns := sprig.HermeticTxtFuncMap()
	for k, fn := range spfns {
		if _, ok := fns[k]; ok {
			continue
		}
		fns[k] = fn
	}

	return fns
}
