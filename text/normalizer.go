package text

import (
	"regexp"
	"strings"

	"github.com/poiesic/wordspace/core"
)

// tagPattern matches markup-like tags in raw review text.
var tagPattern = regexp.MustCompile(`<[^<>]*>`)

// anchorPattern is the allow-pattern for tags that survive markup
// stripping. Anything not matching it is removed.
var anchorPattern = regexp.MustCompile(`(?i)^</?a(\s[^<>]*)?>$`)

// sentenceEndPattern splits cleaned text into sentence segments.
var sentenceEndPattern = regexp.MustCompile(`[.?!;:]`)

// droppedPunctuation is the fixed set of characters removed from review
// text before sentence segmentation. Sentence-ending punctuation is not
// in the set; it is consumed by the segment split instead. The set
// includes the smart quote and dash variants common in review markup.
// The forward slash stays so surviving anchor tags keep their shape.
const droppedPunctuation = ",\"'()[]{}#$%&*+-=_~|@^`“”‘’–—…"

// A Normalizer cleans raw documents and segments them into sentence-level
// token sequences ready for model training.
//
// Normalization strips markup tags (except anchors), backslash escapes and
// punctuation, lowercases, splits on sentence-ending punctuation, and
// tokenizes each segment on whitespace. Segments that clean down to
// nothing are preserved as empty documents; callers that need only
// non-trivial documents filter on Document.Empty.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize converts one raw input document into zero or more sentence
// documents. Malformed input degrades to an empty or near-empty result;
// it never errors.
func (n *Normalizer) Normalize(raw string) []*core.Document {
	cleaned := stripMarkup(raw)
	cleaned = strings.ReplaceAll(cleaned, "\\", "")
	cleaned = dropPunctuation(cleaned)
	cleaned = strings.ToLower(cleaned)

	segments := sentenceEndPattern.Split(cleaned, -1)
	docs := make([]*core.Document, 0, len(segments))
	for _, segment := range segments {
		tokens := strings.Fields(strings.TrimSpace(segment))
		docs = append(docs, core.NewDocument(tokens))
	}
	return docs
}

// stripMarkup removes every tag that does not match the anchor
// allow-pattern, replacing it with a space so adjacent words stay
// separated.
func stripMarkup(s string) string {
	return tagPattern.ReplaceAllStringFunc(s, func(tag string) string {
		if anchorPattern.MatchString(tag) {
			return tag
		}
		return " "
	})
}

func dropPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(droppedPunctuation, r) {
			return -1
		}
		return r
	}, s)
}
