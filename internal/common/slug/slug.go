// Package slug turns human session titles into link-safe identifiers.
package slug

import (
	"strings"
)

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u",
	"Ü", "u", "Ñ", "n",
)

// Make converts a title into a lowercase dash-separated slug:
// "La Maldición" -> "la-maldicion". Runs of non-alphanumerics collapse into
// a single dash and leading/trailing dashes are trimmed.
func Make(title string) string {
	lowered := strings.ToLower(accentReplacer.Replace(title))

	var b strings.Builder
	pendingDash := false
	for _, r := range lowered {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
