package atom

import (
	"encoding/binary"
	"hash/fnv"
	"math/big"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

// Two independent hash lanes back every atom's fingerprint (hash,
// otherHash). hash is xxhash-based; otherHash is FNV-1a-based, seeded and
// combined differently so the two lanes do not collide in lockstep (spec
// invariant I2; the "fingerprint" is the pair jointly).

// normText folds a string the way §3 implicitly requires for anything used
// as a hash/equality key: two visually-identical symbols or strings should
// fingerprint identically regardless of source normalization form.
func normText(s string) string {
	return norm.NFC.String(s)
}

type hashAccumulator struct {
	x *xxhash.Digest
	f hashFNV
}

type hashFNV struct {
	h uint64
}

func newHashAccumulator(kind Kind) *hashAccumulator {
	acc := &hashAccumulator{x: xxhash.New()}
	acc.f.h = fnv.New64a().Sum64()
	acc.writeUint(uint64(kind))
	return acc
}

func (a *hashAccumulator) writeUint(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = a.x.Write(buf[:])
	a.f.h ^= v
	a.f.h *= 1099511628211 // FNV-1a prime, reapplied as the mixing step
}

func (a *hashAccumulator) writeInt(v int) { a.writeUint(uint64(v)) }

func (a *hashAccumulator) writeBool(v bool) {
	if v {
		a.writeUint(1)
	} else {
		a.writeUint(0)
	}
}

func (a *hashAccumulator) writeString(s string) {
	s = normText(s)
	_, _ = a.x.WriteString(s)
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	a.f.h ^= h.Sum64()
	a.f.h *= 1099511628211
}

func (a *hashAccumulator) writeBigInt(v *big.Int) {
	if v == nil {
		a.writeUint(0)
		return
	}
	a.writeString(v.String())
}

func (a *hashAccumulator) writeAtom(v Atom) {
	if v == nil {
		a.writeUint(0)
		return
	}
	a.writeUint(v.Hash())
	a.writeUint(v.OtherHash())
}

func (a *hashAccumulator) sums() (hash, otherHash uint64) {
	return a.x.Sum64(), a.f.h
}
