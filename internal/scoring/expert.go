package scoring

import "fmt"

// ExpertDimensions ist die Kategorienliste der Westpress-Expertenbewertung.
// Sie läuft über den zweiten Anbieter und bleibt komplett deaktiviert,
// solange dessen Zugangsdaten fehlen.
func ExpertDimensions() []Dimension {
	return []Dimension{
		{
			ID:        "content_qualitaet",
			Name:      "Content Qualität",
			Weight:    0.30,
			MaxTokens: 400,
			SystemPrompt: `Du bist Westpress-Expertengutachter für deutsche Stellenanzeigen.

Bewerte die CONTENT QUALITÄT:

1. **Verständlichkeit** (35 Punkte)
   - Klare, einfache Sprache?
   - Keine unnötigen Fremdwörter?
   - Logischer Aufbau?

2. **Vollständigkeit** (35 Punkte)
   - Alle Kernabschnitte vorhanden (Aufgaben, Profil, Benefits, Kontakt)?
   - Keine wichtigen Informationslücken?
   - Ausreichend Detailtiefe?

3. **Strukturierung** (30 Punkte)
   - Sinnvolle Abschnitte und Überschriften?
   - Bulletpoints statt Textwände?
   - Roter Faden erkennbar?

Gib eine Bewertung von 0-100 Punkten.`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`JOBTITEL: %s

STELLENANZEIGE:
%s

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, ad.Title, Truncate(ad.Text, 1500))
			},
		},
		{
			ID:        "zielgruppen_ansprache",
			Name:      "Zielgruppen-Ansprache",
			Weight:    0.25,
			MaxTokens: 400,
			SystemPrompt: `Du bist Westpress-Expertengutachter für deutsche Stellenanzeigen.

Bewerte die ZIELGRUPPEN-ANSPRACHE:

1. **Persona-Match** (40 Punkte)
   - Passt die Ansprache zur gesuchten Zielgruppe?
   - Erfahrungslevel berücksichtigt?
   - Branchenübliche Erwartungen getroffen?

2. **Tonalität** (35 Punkte)
   - Konsistente Sie/Du-Form?
   - Stimmige, authentische Sprache?
   - Weder zu steif noch zu flapsig?

3. **Ansprache-Art** (25 Punkte)
   - Direkte, aktivierende Ansprache?
   - Kandidat im Mittelpunkt?
   - Einladend formuliert?`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`STELLENANZEIGE (für Zielgruppen-Analyse):
%s

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, Truncate(ad.Text, 1200))
			},
		},
		{
			ID:        "unternehmens_branding",
			Name:      "Unternehmens-Branding",
			Weight:    0.25,
			MaxTokens: 400,
			SystemPrompt: `Du bist Westpress-Expertengutachter für deutsche Stellenanzeigen.

Bewerte das UNTERNEHMENS-BRANDING:

1. **Marken-Konsistenz** (35 Punkte)
   - Einheitliches Unternehmensbild?
   - Wiedererkennbare Sprache?
   - Zum Arbeitgeberauftritt passend?

2. **USP-Darstellung** (35 Punkte)
   - Was unterscheidet den Arbeitgeber vom Wettbewerb?
   - Konkrete statt austauschbare Argumente?
   - Glaubwürdig belegt?

3. **Employer Branding** (30 Punkte)
   - Kultur und Werte sichtbar?
   - Team und Arbeitsumfeld beschrieben?
   - Authentischer Einblick statt Floskeln?`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`STELLENANZEIGE (für Branding-Analyse):
%s

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, Truncate(ad.Text, 1500))
			},
		},
		{
			ID:        "conversion_optimierung",
			Name:      "Conversion-Optimierung",
			Weight:    0.20,
			MaxTokens: 400,
			SystemPrompt: `Du bist Westpress-Expertengutachter für deutsche Stellenanzeigen.

Bewerte die CONVERSION-OPTIMIERUNG:

1. **Call-to-Action** (40 Punkte)
   - Klare Handlungsaufforderung?
   - Am richtigen Ort platziert?
   - Motivierend formuliert?

2. **Bewerbungsprozess** (35 Punkte)
   - Einfacher, kurzer Weg zur Bewerbung?
   - Hürden (Anschreiben, Portale) minimiert?
   - Prozess transparent erklärt?

3. **Mobile Optimierung** (25 Punkte)
   - Kurze Absätze, scannbarer Text?
   - Wichtiges zuerst?
   - Auch auf kleinem Bildschirm erfassbar?`,
			UserPrompt: func(ad Ad) string {
				return fmt.Sprintf(`STELLENANZEIGE (Ende für CTA-Analyse):
%s

GESAMTE ANZEIGE (für Kontext):
%s...

Format: SCORE|FEEDBACK|VORSCHLAG1,VORSCHLAG2`, Tail(ad.Text, 600), Truncate(ad.Text, 300))
			},
		},
	}
}
