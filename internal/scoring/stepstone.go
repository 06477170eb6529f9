package scoring

import "fmt"

// StepstoneDimensions ist die geschlossene Kategorienliste der
// Stepstone-Bewertung. Die Gewichte summieren sich zu 1.0.
func StepstoneDimensions() []Dimension {
	return []Dimension{
		{
			ID:        "anzeigenkopf",
			Name:      "Anzeigenkopf",
			Weight:    0.15,
			MaxTokens: 500,
			SystemPrompt: `Du bist Stepstone Bewertungsexperte für deutsche Stellenanzeigen.

Bewerte den ANZEIGENKOPF (Job Title) nach diesen Kriterien:

1. **Klarheit & Verständlichkeit** (25 Punkte)
   - Ist der Titel klar und präzise?
   - Keine mehrdeutigen Begriffe?
   - Sofort verständlich was gesucht wird?

2. **Relevanz für die Suche** (25 Punkte)
   - Verwendet gängige Suchbegriffe?
   - Keine überflüssigen Zusätze?
   - Stepstone/Google-optimiert?

3. **Gendergerechte Formulierung** (25 Punkte)
   - Enthält (m/w/d) oder ähnlich?
   - Inklusiv formuliert?
   - Kein Gender-Bias?

4. **Suchvolumen-Optimierung** (25 Punkte)
   - Nutzt bekannte Berufsbezeichnungen?
   - Branchenüblich formuliert?
   - Zielgruppe findet es leicht?

Gib eine Bewertung von 0-100 Punkten und konkretes Feedback.`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`JOBTITEL: %s

STELLENANZEIGE:
%s...

Bewerte nur den Anzeigenkopf/Jobtitel und gib zurück:
- Score (0-100)
- Feedback (kurz und konkret)
- 2-3 Verbesserungsvorschläge

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2,VORSCHLAG3`, ad.Title, Truncate(ad.Text, 1000))
			},
		},
		{
			ID:        "einleitung",
			Name:      "Einleitung",
			Weight:    0.10,
			MaxTokens: 400,
			SystemPrompt: `Du bewertest die EINLEITUNG von Stellenanzeigen nach Stepstone-Kriterien:

1. **Aufmerksamkeitshöhe** (35 Punkte)
   - Catchy und einprägsam?
   - Kandidaten-fokussiert statt Unternehmen-fokussiert?
   - Neugier weckend?

2. **Nutzenorientierung** (35 Punkte)
   - Zeigt Vorteile für Bewerber?
   - Nicht nur Anforderungen?
   - "Was habe ich davon?"-Test bestanden?

3. **Zielgruppen-Ansprache** (30 Punkte)
   - Anrede passend zur Zielgruppe?
   - Tonalität stimmig?
   - Richtige Sie/Du-Form?

Bewerte 0-100 Punkte.`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`EINLEITUNG DER STELLENANZEIGE:
%s

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, FirstLines(ad.Text, 5))
			},
		},
		{
			ID:        "aufgabenbeschreibung",
			Name:      "Aufgabenbeschreibung",
			Weight:    0.15,
			MaxTokens: 400,
			SystemPrompt: `Bewerte die AUFGABENBESCHREIBUNG nach Stepstone-Standards:

1. **Struktur & Lesbarkeit** (30 Punkte)
   - Klare Bulletpoints oder Absätze?
   - Keine Textblöcke?
   - Übersichtlich gegliedert?

2. **Konkretheit** (40 Punkte)
   - Keine Floskeln wie "abwechslungsreiche Tätigkeiten"?
   - Messbare, spezifische Aufgaben?
   - Realistische Beschreibung?

3. **Vollständigkeit** (30 Punkte)
   - Hauptaufgaben abgedeckt?
   - Wichtige Tätigkeiten erwähnt?
   - Ausgewogene Darstellung?`,
			UserPrompt: func(ad Ad) string {
				section := ExtractSection(ad.Text, []string{"aufgaben", "tätigkeiten", "ihre aufgaben", "das erwartet"})
				return fmt.Sprintf(`AUFGABENBESCHREIBUNG:
%s

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2,VORSCHLAG3`, Truncate(section, 800))
			},
		},
		{
			ID:        "profil_anforderungen",
			Name:      "Profil & Anforderungen",
			Weight:    0.15,
			MaxTokens: 400,
			SystemPrompt: `Bewerte PROFIL & ANFORDERUNGEN nach Stepstone-Kriterien:

1. **Relevanz** (40 Punkte)
   - Realistische Muss-/Kann-Kriterien?
   - Keine Überqualifikation gefordert?
   - Angemessen für die Position?

2. **Verständlichkeit** (30 Punkte)
   - Keine Fachjargon-Überladung?
   - Klare, verständliche Sprache?
   - Auch für Branchenfremde verständlich?

3. **Fairness & Inklusion** (30 Punkte)
   - Keine verdeckte Diskriminierung?
   - AGG-konform?
   - Diverse Bewerber ermutigt?`,
			UserPrompt: func(ad Ad) string {
				section := ExtractSection(ad.Text, []string{"profil", "anforderungen", "qualifikation", "ihr profil", "das bringen sie mit"})
				return fmt.Sprintf(`PROFIL & ANFORDERUNGEN:
%s

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, Truncate(section, 800))
			},
		},
		{
			ID:        "benefits",
			Name:      "Benefits",
			Weight:    0.10,
			MaxTokens: 400,
			SystemPrompt: `Bewerte BENEFITS nach Stepstone-Standards:

1. **Attraktivität & Vielfalt** (40 Punkte)
   - Mix aus monetären und nicht-monetären Benefits?
   - Attraktiv für Zielgruppe?
   - Vielfältige Angebote?

2. **Authentizität** (30 Punkte)
   - Realistisch und glaubwürdig?
   - Nicht übertrieben?
   - Konkret beschrieben?

3. **Klarheit** (30 Punkte)
   - Übersichtlich dargestellt?
   - Keine leeren Floskeln?
   - Spezifisch formuliert?`,
			UserPrompt: func(ad Ad) string {
				section := ExtractSection(ad.Text, []string{"wir bieten", "benefits", "vorteile", "das bieten wir"})
				return fmt.Sprintf(`BENEFITS-SEKTION:
%s

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, Truncate(section, 600))
			},
		},
		{
			ID:        "kontakt_bewerbung",
			Name:      "Kontakt & Bewerbung",
			Weight:    0.08,
			MaxTokens: 400,
			SystemPrompt: `Bewerte KONTAKT & BEWERBUNGSPROZESS:

1. **Transparenz** (40 Punkte)
   - Klare Kontaktdaten?
   - Ansprechpartner sichtbar?
   - Wie kann man sich bewerben?

2. **Einfachheit** (35 Punkte)
   - Bewerbungsprozess erklärt?
   - Kurze Wege beschrieben?
   - Nicht zu kompliziert?

3. **Zusatzinfos** (25 Punkte)
   - Gehaltsangaben wenn möglich?
   - Starttermin genannt?
   - Weitere wichtige Details?`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`KONTAKT & BEWERBUNG (meist Ende der Anzeige):
%s

GESAMTE ANZEIGE (für Kontext):
%s...

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, Tail(ad.Text, 500), Truncate(ad.Text, 200))
			},
		},
		{
			ID:        "sprache_stil",
			Name:      "Sprache & Stil",
			Weight:    0.12,
			MaxTokens: 400,
			SystemPrompt: `Bewerte SPRACHE & STIL nach Stepstone-Kriterien:

1. **Zielgruppenorientierung** (35 Punkte)
   - Sprache passt zur Zielgruppe?
   - Angemessene Komplexität?
   - Regionalität berücksichtigt?

2. **Genderneutralität** (35 Punkte)
   - Gendergerechte Sprache verwendet?
   - Decoder-Test bestanden?
   - Inklusiv formuliert?

3. **Aktivierende Sprache** (30 Punkte)
   - Positive, einladende Wortwahl?
   - Motivierend geschrieben?
   - Action-orientiert?`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`STELLENANZEIGE (für Sprach-/Stilanalyse):
%s

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, Truncate(ad.Text, 1200))
			},
		},
		{
			ID:        "suchverhalten_keywords",
			Name:      "Suchverhalten & Keywords",
			Weight:    0.10,
			MaxTokens: 400,
			SystemPrompt: `Bewerte SUCHVERHALTEN & KEYWORDS:

1. **Keyword-Optimierung** (40 Punkte)
   - Relevante Suchbegriffe integriert?
   - Stepstone-Algorithmus berücksichtigt?
   - Natürlich eingebaut?

2. **Lesefreundlichkeit** (30 Punkte)
   - Gute Absätze und Struktur?
   - Bulletpoints verwendet?
   - Zwischenüberschriften?

3. **Aufmerksamkeitsspanne** (30 Punkte)
   - Wichtige Infos früh platziert?
   - "Goldfisch-Theorie" berücksichtigt?
   - Schnell erfassbar?`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`JOBTITEL: %s
STELLENANZEIGE: %s

Analysiere auf Keywords und Suchverhalten.
Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, ad.Title, Truncate(ad.Text, 1000))
			},
		},
		{
			ID:        "agg_bias_check",
			Name:      "AGG & Bias Check",
			Weight:    0.05,
			MaxTokens: 500,
			SystemPrompt: `Bewerte AGG-KONFORMITÄT & BIAS-CHECK (sehr wichtig!):

1. **AGG-Konformität** (50 Punkte)
   - Keine Alters-Diskriminierung ("junges Team", Altersangaben)?
   - Keine Geschlechts-Diskriminierung?
   - Keine Herkunfts-/Religions-Diskriminierung?
   - Keine Behinderung-Diskriminierung?

2. **Genderbias Decoder-Test** (30 Punkte)
   - Keine männlich-konnotierten Begriffe übermäßig?
   - Balanced Language?
   - Frauen/Diverse ermutigt zu bewerben?

3. **Inklusiver Ton** (20 Punkte)
   - Alle Gruppen angesprochen?
   - Barrierefreie Sprache?
   - Diverse Teams erwähnt?

ACHTUNG: Bei AGG-Verstößen maximal 30 Punkte Gesamtscore!`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`STELLENANZEIGE (für AGG & Bias-Analyse):
%s

Prüfe sehr sorgfältig auf Diskriminierung!
Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, ad.Text)
			},
		},
	}
}
