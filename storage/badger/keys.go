package badger

import (
	"fmt"

	"github.com/poiesic/wordspace/core"
)

// Key prefixes for different data types
const (
	documentRecordPrefix = "docrec"
	vectorRecordPrefix   = "vecrec"
	vectorDimKey         = "vecdim"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentRecordPrefix, id))
}

// makeVectorKey generates a key for a token's vector.
// Tokens key their own records, so overwrite semantics come for free.
func makeVectorKey(token string) []byte {
	return []byte(vectorRecordPrefix + ":" + token)
}

// makeVectorDimKey generates the key holding the store's vector
// dimensionality. Written once by the first PutVectors call.
func makeVectorDimKey() []byte {
	return []byte(vectorDimKey)
}
