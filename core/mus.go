package core

// Hand-maintained MUS serializers. The schema is two small records, so
// these are written directly against the mus-go primitives instead of
// being generated.

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	// IDMUS serializes IDs.
	IDMUS = idMUS{}
	// VectorMUS serializes embedding vectors.
	VectorMUS = ord.NewSliceSer[float32](raw.Float32)
	// TokensMUS serializes token sequences.
	TokensMUS = ord.NewSliceSer[string](ord.String)
	// DocumentMUS serializes Documents.
	DocumentMUS = documentMUS{}
	// VectorEntryMUS serializes VectorEntries.
	VectorEntryMUS = vectorEntryMUS{}
)

type idMUS struct{}

var _ mus.Serializer[ID] = idMUS{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type documentMUS struct{}

var _ mus.Serializer[Document] = documentMUS{}

func (documentMUS) Marshal(d Document, bs []byte) int {
	n := IDMUS.Marshal(d.Id, bs)
	n += TokensMUS.Marshal(d.Tokens, bs[n:])
	return n
}

func (documentMUS) Unmarshal(bs []byte) (Document, int, error) {
	var d Document
	id, n, err := IDMUS.Unmarshal(bs)
	if err != nil {
		return d, n, err
	}
	d.Id = id
	tokens, n1, err := TokensMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return d, n, err
	}
	d.Tokens = tokens
	return d, n, nil
}

func (documentMUS) Size(d Document) int {
	return IDMUS.Size(d.Id) + TokensMUS.Size(d.Tokens)
}

func (documentMUS) Skip(bs []byte) (int, error) {
	n, err := IDMUS.Skip(bs)
	if err != nil {
		return n, err
	}
	n1, err := TokensMUS.Skip(bs[n:])
	return n + n1, err
}

type vectorEntryMUS struct{}

var _ mus.Serializer[VectorEntry] = vectorEntryMUS{}

func (vectorEntryMUS) Marshal(e VectorEntry, bs []byte) int {
	n := ord.String.Marshal(e.Token, bs)
	n += VectorMUS.Marshal(e.Vector, bs[n:])
	return n
}

func (vectorEntryMUS) Unmarshal(bs []byte) (VectorEntry, int, error) {
	var e VectorEntry
	token, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return e, n, err
	}
	e.Token = token
	vec, n1, err := VectorMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return e, n, err
	}
	e.Vector = vec
	return e, n, nil
}

func (vectorEntryMUS) Size(e VectorEntry) int {
	return ord.String.Size(e.Token) + VectorMUS.Size(e.Vector)
}

func (vectorEntryMUS) Skip(bs []byte) (int, error) {
	n, err := ord.String.Skip(bs)
	if err != nil {
		return n, err
	}
	n1, err := VectorMUS.Skip(bs[n:])
	return n + n1, err
}
