package query

import "errors"

var (
	// ErrVocabularyRequired is returned when a vocabulary is not provided.
	ErrVocabularyRequired = errors.New("vocabulary required")
)
