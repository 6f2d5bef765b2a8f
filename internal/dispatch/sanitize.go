package dispatch

import "strings"

// asciiReplacer maps currency symbols and typographic punctuation that upset
// downstream analyzers to plain ASCII equivalents.
var asciiReplacer = strings.NewReplacer(
	"₹", "Rs. ", // ₹
	"–", "-", // en dash
	"—", "-", // em dash
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// SanitizeText normalizes pasted job text before submission: known symbols are
// replaced with ASCII equivalents and any remaining non-ASCII runes dropped.
func SanitizeText(text string) string {
	text = asciiReplacer.Replace(text)

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
