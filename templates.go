package argparse

import (
	_ "embed"
	"text/template"
)

//go:embed templates/help.gotmpl
var HelpTemplateText string

var HelpTemplate = template.Must(template.New("help").Parse(HelpTemplateText))
