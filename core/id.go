package core

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
)

// QueryID is a deterministic fingerprint of a query's shape and constraints.
// It is used to correlate log lines and results produced by the same query.
type QueryID uint64

// String renders the ID as fixed-width hex.
func (id QueryID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// IDFromQuery hashes a query with 64-bit BLAKE2b. Unset and empty attributes
// hash differently, and so do a single-token query and a one-token sequence.
func IDFromQuery(q Query) QueryID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	if q.sequence {
		h.Write([]byte{'s'})
	} else {
		h.Write([]byte{'w'})
	}
	var lenBuf [binary.MaxVarintLen64]byte
	for _, qt := range q.tokens {
		h.Write([]byte{'|'})
		for _, attr := range AttributeOrder {
			v, ok := qt.Get(attr)
			if !ok {
				h.Write([]byte{0})
				continue
			}
			h.Write([]byte{1})
			n := binary.PutUvarint(lenBuf[:], uint64(len(v)))
			h.Write(lenBuf[:n])
			h.Write([]byte(v))
		}
	}
	return QueryID(binary.LittleEndian.Uint64(h.Sum(nil)))
}
