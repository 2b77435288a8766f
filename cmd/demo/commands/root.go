package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"legaldemo/demodocs"
	"legaldemo/internal/config"
	"legaldemo/internal/documents"
	"legaldemo/internal/responder"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	delay         bool
	noColor       bool
	responsesFile string
	docsDir       string
}

// demo is built once per invocation by the root command's pre-run hook.
type demo struct {
	responder *responder.Static
	catalog   *documents.Catalog
	examples  []string
	printer   *printer
	delay     bool
	sleep     func(ctx context.Context, d time.Duration) error
}

func newRootCmd(d *demo) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "legaldemo",
		Short: "Assistant juridique IA - démo hors ligne",
		Long: `Answers questions about the bundled French legal documents from a
prepared response table. No API key and no network access are needed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return d.init(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.delay, "delay", false, "wait for the simulated analysis time before printing")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&opts.responsesFile, "responses", "", "YAML response table (default: RESPONSES_FILE or the bundled table)")
	rootCmd.PersistentFlags().StringVar(&opts.docsDir, "docs-dir", "", "directory of demo documents (default: DEMO_DOCS_DIR or the bundled set)")

	rootCmd.AddCommand(
		newAskCmd(d),
		newReplCmd(d),
		newExamplesCmd(d),
		newDocumentsCmd(d),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	if err := loadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}
	return newRootCmd(&demo{sleep: sleepContext}).Execute()
}

// loadDotEnv loads .env files into the environment. Missing files are
// ignored.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (d *demo) init(cmd *cobra.Command, opts *options) error {
	cfg := config.Load()
	if opts.responsesFile != "" {
		cfg.ResponsesFile = opts.responsesFile
	}
	if opts.docsDir != "" {
		cfg.DemoDocsDir = opts.docsDir
	}

	if opts.noColor {
		color.NoColor = true
	}
	d.printer = newPrinter(cmd.OutOrStdout(), opts.noColor)
	d.delay = opts.delay

	var err error
	if cfg.DemoDocsDir != "" {
		d.catalog, err = documents.LoadDir(cfg.DemoDocsDir)
	} else {
		d.catalog, err = documents.Load(demodocs.FS)
	}
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}

	table := responder.DefaultTable()
	d.examples = responder.ExampleQuestions()
	if cfg.ResponsesFile != "" {
		rf, err := config.LoadResponsesFile(cfg.ResponsesFile)
		if err != nil {
			return err
		}
		if table, err = responder.NewTable(rf.Entries, rf.Fallback); err != nil {
			return fmt.Errorf("invalid response table: %w", err)
		}
		d.examples = rf.Examples
	}

	builder, err := responder.NewBuilder(table, cfg.SimulationBounds(), responder.WithDocumentCount(d.catalog.Len()))
	if err != nil {
		return err
	}

	d.responder = responder.NewStatic(table, builder)
	return nil
}

// answer responds to question and prints the result, waiting first when
// --delay is set.
func (d *demo) answer(ctx context.Context, question string) error {
	d.printer.analyzing(question)

	res := d.responder.Respond(question)
	if d.delay {
		if err := d.sleep(ctx, time.Duration(res.SimulatedLatencyMS)*time.Millisecond); err != nil {
			return err
		}
	}

	d.printer.result(&res)
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
