package ast

import (
	"encoding/binary"
	"hash/maphash"
)

// seed is shared by all hashes in the process so that equal trees hash
// equally.  Hashes are not stable across processes.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of n, consistent with Equal.
// It panics if n is nil.
func Hash(n Node) uint64 {
	if n == nil {
		panic("ast: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Kind()))
	h.WriteString(n.label())
	// the label is variable length
	h.WriteByte(0)
	var b [8]byte
	for _, k := range n.children() {
		binary.LittleEndian.PutUint64(b[:], Hash(k))
		h.Write(b[:])
	}
	return h.Sum64()
}
