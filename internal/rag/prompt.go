package rag

import "strings"

const promptTemplate = `Tu es un assistant juridique expert spécialisé dans le droit français.
Réponds à la question en te basant UNIQUEMENT sur les documents fournis.

CONTEXTE:
{context}

QUESTION: {query}

INSTRUCTIONS:
1. Réponds en français professionnel
2. Cite tes sources précisément (nom du document)
3. Si l'information n'est pas dans les documents, dis-le clairement
4. Structure ta réponse avec des puces si nécessaire
5. Reste factuel et précis

RÉPONSE:
`

// BuildPrompt renders the French legal prompt for query over passages.
func BuildPrompt(query string, passages []Passage) string {
	blocks := make([]string, 0, len(passages))
	for _, p := range passages {
		blocks = append(blocks, "Document: "+p.Source+"\nContenu: "+p.Content)
	}

	r := strings.NewReplacer(
		"{context}", strings.Join(blocks, "\n\n"),
		"{query}", query,
	)
	return r.Replace(promptTemplate)
}
