package responder

import "legaldemo/internal/models"

// DefaultEntries returns the canned answers for the bundled French legal
// demo documents. Order is priority order.
func DefaultEntries() []models.ResponseEntry {
	return []models.ResponseEntry{
		{
			Key:      "obligations-bailleur",
			Keywords: []string{"bailleur"},
			Answer: `**Obligations principales du bailleur selon le contrat de bail commercial :**

1. **Délivrance des locaux** - Livrer les locaux en bon état de réparations locatives
2. **Jouissance paisible** - Assurer la jouissance paisible des lieux loués
3. **Grosses réparations** - Effectuer les grosses réparations selon l'article 606 du Code civil
4. **Entretien des parties communes** - Maintenir les parties communes en bon état

Ces obligations sont détaillées dans l'Article 4 du contrat analysé.`,
			Sources: []string{"contrat_bail_commercial.txt", "Article 4 - Obligations du bailleur"},
		},
		{
			Key:      "periode-essai",
			Keywords: []string{"période d'essai", "essai"},
			Answer: `**Période d'essai dans le contrat de travail :**

- **Durée :** 4 mois renouvelable une fois
- **Statut :** Contrat à Durée Indéterminée (CDI)
- **Poste :** Développeuse Senior

La période d'essai est conforme à la durée légale pour un cadre (Article 6 du contrat).`,
			Sources: []string{"contrat_travail_cdi.txt", "Article 6 - Période d'essai"},
		},
		{
			Key:      "montant-reclame",
			Keywords: []string{"montant", "réclam", "reclam", "condamn"},
			Answer: `**Montants réclamés dans le jugement du Tribunal de Commerce :**

- **Principal :** 45 000 euros (factures impayées)
- **Intérêts légaux :** À compter de l'échéance de chaque facture
- **Indemnité forfaitaire :** 200 euros (5 factures × 40 euros)
- **Article 700 CPC :** 1 500 euros
- **Total réclamé :** Environ 46 700 euros + intérêts

Jugement rendu le 15 novembre 2023 par le Tribunal de Commerce de Lyon.`,
			Sources: []string{"jugement_tribunal_commerce.txt", "Condamnation principale"},
		},
		{
			Key:      "associes-sarl",
			Keywords: []string{"associé", "associe", "parts sociales", "répartition des parts"},
			Answer: `**Associés de la SARL Innovation Tech :**

- **Thomas MARTIN :** 60 parts (6 000 euros) - 60%
- **Julie BERNARD :** 40 parts (4 000 euros) - 40%

**Capital social total :** 10 000 euros divisé en 100 parts de 100 euros chacune.
Thomas MARTIN est également désigné comme gérant pour une durée illimitée.`,
			Sources: []string{"statuts_sarl.txt", "Article 7 - Répartition des parts"},
		},
		{
			Key:      "clause-resolutoire",
			Keywords: []string{"résolutoire", "resolutoire", "résiliation", "resiliation"},
			Answer: `**Clause résolutoire du bail commercial :**

En cas de non-paiement du loyer à l'échéance, le bail sera **automatiquement résilié de plein droit** si le locataire n'a pas remédié à ce manquement dans les **30 jours** suivant une mise en demeure restée infructueuse.

**Conditions :**
- Défaut de paiement du loyer
- Mise en demeure préalable
- Délai de grâce de 30 jours
- Résiliation automatique si non-régularisation`,
			Sources: []string{"contrat_bail_commercial.txt", "Article 6 - Clause résolutoire"},
		},
	}
}

// DefaultFallback is the generic answer for questions no entry covers. It
// echoes the question and the number of analyzed documents.
func DefaultFallback() models.FallbackResponse {
	return models.FallbackResponse{
		Answer: `Basé sur l'analyse de vos ` + PlaceholderDocuments + ` documents juridiques :

**Question :** ` + PlaceholderQuestion + `

**Analyse effectuée sur :**
• Contrats commerciaux et de travail
• Décisions de justice
• Statuts de société
• Procédures civiles

**Méthodologie :** Recherche sémantique + analyse contextuelle française

*Pour une réponse plus précise, reformulez votre question ou utilisez des mots-clés spécifiques.*`,
		Sources: []string{"demo_docs (analyse générale)"},
	}
}

// DefaultTable builds the bundled table. It panics only if the bundled data
// breaks the table invariants.
func DefaultTable() *Table {
	t, err := NewTable(DefaultEntries(), DefaultFallback())
	if err != nil {
		panic("responder: invalid default table: " + err.Error())
	}
	return t
}

// ExampleQuestions are suggested on the demo page and in the CLI. Each one
// hits a different default entry.
func ExampleQuestions() []string {
	return []string{
		"Quelles sont les obligations du bailleur dans le contrat de bail ?",
		"Quelle est la durée de la période d'essai ?",
		"Quel montant est réclamé dans le jugement ?",
		"Qui sont les associés de la SARL ?",
		"Quelle est la clause résolutoire du bail ?",
	}
}
