package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleAd = `Softwareentwickler (m/w/d)

Wir suchen Verstärkung für unser Team.

Ihre Aufgaben:
- Entwicklung von Backend-Services
- Code Reviews
- Betrieb der Plattform

Ihr Profil:
- Erfahrung mit Go
- Teamfähigkeit

Bewerbung an jobs@example.de`

func TestExtractSectionAnchorsOnKeyword(t *testing.T) {
	section := ExtractSection(sampleAd, []string{"aufgaben"})

	assert.Contains(t, section, "Ihre Aufgaben:")
	assert.Contains(t, section, "Entwicklung von Backend-Services")
	assert.NotContains(t, section, "Wir suchen Verstärkung")
}

func TestExtractSectionStopsAtBlankLineAfterFourLines(t *testing.T) {
	section := ExtractSection(sampleAd, []string{"aufgaben"})

	// Der Leerzeilen-Stopp greift erst nach mehr als drei Zeilen,
	// danach darf "Ihr Profil" nicht mehr auftauchen.
	assert.Contains(t, section, "Betrieb der Plattform")
	assert.NotContains(t, section, "Ihr Profil")
}

func TestExtractSectionStopsAtStopKeyword(t *testing.T) {
	text := "Benefits:\nObst\nBewerbung bitte per Mail"
	section := ExtractSection(text, []string{"benefits"})

	assert.Contains(t, section, "Obst")
	assert.NotContains(t, section, "Bewerbung")
}

func TestExtractSectionFallbackWithoutAnchor(t *testing.T) {
	section := ExtractSection(sampleAd, []string{"gibtesnicht"})
	assert.Equal(t, Truncate(sampleAd, 300), section)

	long := strings.Repeat("ä", 400)
	fallback := ExtractSection(long, []string{"gibtesnicht"})
	assert.Equal(t, 300, len([]rune(fallback)))
}

func TestExtractSectionCaseInsensitive(t *testing.T) {
	section := ExtractSection(sampleAd, []string{"IHR PROFIL"})
	assert.Equal(t, Truncate(sampleAd, 300), section, "keywords are matched lowercase")

	section = ExtractSection(sampleAd, []string{"ihr profil"})
	assert.Contains(t, section, "Erfahrung mit Go")
}

func TestTruncateAndTailAreRuneSafe(t *testing.T) {
	s := "äöüß€"
	assert.Equal(t, "äöü", Truncate(s, 3))
	assert.Equal(t, "ß€", Tail(s, 2))
	assert.Equal(t, s, Truncate(s, 10))
	assert.Equal(t, s, Tail(s, 10))
}

func TestFirstLines(t *testing.T) {
	s := "a\nb\nc\nd"
	assert.Equal(t, "a\nb", FirstLines(s, 2))
	assert.Equal(t, s, FirstLines(s, 10))
}
