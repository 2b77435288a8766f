package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"legaldemo/internal/models"
)

const rule = "=================================================="

type printer struct {
	out io.Writer

	title   *color.Color
	success *color.Color
	label   *color.Color
	muted   *color.Color
	warn    *color.Color
}

func newPrinter(out io.Writer, noColor bool) *printer {
	p := &printer{
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		label:   color.New(color.FgYellow),
		muted:   color.New(color.Faint),
		warn:    color.New(color.FgMagenta),
	}
	if noColor {
		for _, c := range []*color.Color{p.title, p.success, p.label, p.muted, p.warn} {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) banner(docs []models.DocumentSummary) {
	line := strings.Repeat("=", 60)
	p.title.Fprintln(p.out, line)
	p.title.Fprintln(p.out, "🏛️  ASSISTANT JURIDIQUE IA - DÉMO INTERACTIVE")
	p.title.Fprintln(p.out, line)
	fmt.Fprintln(p.out, "✅ Transformez 3 heures de recherche en 30 secondes")
	fmt.Fprintln(p.out, "✅ Réponses en français juridique professionnel")
	fmt.Fprintln(p.out, "✅ Sources citées avec précision")
	p.title.Fprintln(p.out, line)
	p.documents(docs)
}

func (p *printer) documents(docs []models.DocumentSummary) {
	p.label.Fprintf(p.out, "📁 Documents chargés: %d\n", len(docs))
	for _, d := range docs {
		fmt.Fprintf(p.out, "   📄 %s\n", d.Name)
	}
}

func (p *printer) examples(questions []string) {
	if len(questions) == 0 {
		return
	}
	p.label.Fprintln(p.out, "🎯 QUESTIONS D'EXEMPLE:")
	for i, q := range questions {
		fmt.Fprintf(p.out, "   %d. %s\n", i+1, q)
	}
}

func (p *printer) analyzing(question string) {
	p.muted.Fprintf(p.out, "\n🔍 Analyse en cours de: '%s'\n", question)
	p.muted.Fprintln(p.out, "⏳ Recherche dans les documents...")
}

func (p *printer) result(res *models.QueryResult) {
	p.success.Fprintf(p.out, "\n✅ ANALYSE TERMINÉE (%d ms)\n", res.SimulatedLatencyMS)
	fmt.Fprintf(p.out, "📊 Documents analysés: %d\n", res.DocumentsAnalyzed)
	fmt.Fprintf(p.out, "🎯 Niveau de confiance: %.0f%%\n", res.SimulatedConfidence*100)
	if !res.Matched {
		p.warn.Fprintln(p.out, "ℹ️  Aucune réponse préparée ne correspond, réponse générale.")
	}

	p.title.Fprintln(p.out, "\n"+rule)
	p.title.Fprintln(p.out, "📝 RÉPONSE:")
	p.title.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, res.Answer)

	p.title.Fprintln(p.out, "\n"+rule)
	p.title.Fprintln(p.out, "📚 SOURCES CITÉES:")
	p.title.Fprintln(p.out, rule)
	for i, s := range res.Sources {
		fmt.Fprintf(p.out, "   %d. %s\n", i+1, s)
	}
}

func (p *printer) prompt() {
	p.label.Fprintln(p.out, "\n💬 VOTRE QUESTION (ou 'quit' pour sortir):")
	fmt.Fprint(p.out, ">>> ")
}

func (p *printer) goodbye() {
	p.success.Fprintln(p.out, "\n🎉 Merci d'avoir testé l'Assistant Juridique IA!")
}
