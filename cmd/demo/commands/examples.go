package commands

import (
	"github.com/spf13/cobra"
)

func newExamplesCmd(d *demo) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the example questions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			d.printer.examples(d.examples)
		},
	}
}

func newDocumentsCmd(d *demo) *cobra.Command {
	return &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "List the documents the demo analyzes",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			d.printer.documents(d.catalog.Summaries())
		},
	}
}
