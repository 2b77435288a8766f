package commands

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
)

// quitWords end the interactive session.
var quitWords = map[string]bool{"quit": true, "exit": true, "q": true}

func newReplCmd(d *demo) *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Aliases: []string{"interactive"},
		Short:   "Start the interactive demo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d.printer.banner(d.catalog.Summaries())
			d.printer.examples(d.examples)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				d.printer.prompt()
				if !scanner.Scan() {
					break
				}

				question := strings.TrimSpace(scanner.Text())
				if quitWords[strings.ToLower(question)] {
					break
				}
				if question == "" {
					continue
				}

				if err := d.answer(cmd.Context(), question); err != nil {
					return err
				}
			}

			d.printer.goodbye()
			return scanner.Err()
		},
	}
}
