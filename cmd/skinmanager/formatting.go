package skinmanager

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/skinmanager/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpFuncs returns the functions the usage template calls. Headings are
// bold only when w is a terminal.
func helpFuncs(w any) template.FuncMap {
	styled := ui.IsTerminal(w)
	bold := func(s string) string {
		if !styled {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	return template.FuncMap{
		"bold":      bold,
		"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
	}
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs(os.Stdout))
}
