package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(d *demo) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question",
		Example: `  legaldemo ask "Quelle est la durée de la période d'essai ?"
  legaldemo ask --delay Qui sont les associés de la SARL`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.answer(cmd.Context(), strings.Join(args, " "))
		},
	}
}
