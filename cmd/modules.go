package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/consultquest/internal/bank"
)

const (
	idColumnWidth    = 16
	titleColumnWidth = 40
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the modules in the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}
		printModules(cmd.OutOrStdout(), b)
		return nil
	},
}

// printModules writes the module table. Columns are sized in terminal
// cells, so wide (CJK) titles stay aligned.
func printModules(w io.Writer, b *bank.Bank) {
	fmt.Fprintf(w, "%s (%s)\n\n", b.Title(), b.Version())

	// Header.
	fmt.Fprintf(w, "%3s  %s  %s  %9s  %7s\n",
		"#", cell("ID", idColumnWidth), cell("Title", titleColumnWidth), "Questions", "Minutes")
	fmt.Fprintln(w, strings.Repeat("─", 3+2+idColumnWidth+2+titleColumnWidth+2+9+2+7))

	for i, m := range b.Modules() {
		fmt.Fprintf(w, "%3d  %s  %s  %9d  %7d\n",
			i+1, cell(m.ID, idColumnWidth), cell(m.Title, titleColumnWidth), len(m.Questions), m.EstimatedMinutes())
	}

	fmt.Fprintf(w, "\n%d modules, %d questions\n", b.ModuleCount(), b.TotalQuestions())
}

// cell truncates s to width cells and pads it with spaces to exactly width.
func cell(s string, width int) string {
	s = ansi.Truncate(s, width, "...")
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}
