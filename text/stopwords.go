package text

import "github.com/poiesic/wordspace/core"

// Stop words removed from normalized documents before training.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "were": true, "been": true, "to": true, "of": true,
	"and": true, "in": true, "that": true, "have": true, "has": true,
	"had": true, "it": true, "its": true, "for": true, "not": true,
	"on": true, "with": true, "as": true, "you": true, "your": true,
	"do": true, "does": true, "did": true, "at": true, "this": true,
	"these": true, "those": true, "but": true, "by": true, "from": true,
	"i": true, "my": true, "me": true, "we": true, "our": true, "he": true,
	"him": true, "his": true, "she": true, "her": true, "they": true,
	"them": true, "their": true, "or": true, "so": true, "if": true,
	"no": true, "all": true, "will": true, "would": true, "there": true,
	"what": true, "which": true, "who": true, "when": true,
}

// IsStopword reports whether token is in the stopword set.
// Tokens are expected to be lowercase already.
func IsStopword(token string) bool {
	return stopwords[token]
}

// FilterStopwords returns a new document holding only the non-stopword
// tokens of doc, with a recomputed content ID. The input is not modified.
func FilterStopwords(doc *core.Document) *core.Document {
	kept := make([]string, 0, len(doc.Tokens))
	for _, token := range doc.Tokens {
		if !stopwords[token] {
			kept = append(kept, token)
		}
	}
	return core.NewDocument(kept)
}
