package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/consultquest/internal/bank"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a question bank file for problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%s, %d modules, %d questions)\n",
			args[0], b.Version(), b.ModuleCount(), b.TotalQuestions())
		return nil
	},
}
