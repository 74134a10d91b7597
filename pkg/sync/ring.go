package sync

import (
	"encoding/binary"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/spaolacci/murmur3"
)

// ring is a consistent hash ring over a fixed number of slots
type ring struct {
	hashRing *treemap.Map

	// minSlot caches the slot of the smallest hash, which is where keys
	// hashing past the last entry wrap around to.
	minSlot int
}

// newRing returns a ring with replicationFactor virtual nodes for each of the
// slots in [0, slots)
func newRing(slots int, replicationFactor uint) *ring {
	hashRing := treemap.NewWith(utils.Int64Comparator)
	for slot := 0; slot < slots; slot++ {
		slotHash, _ := murmur3.Sum128([]byte(fmt.Sprintf("slot%d", slot)))
		slotHashBytes := make([]byte, 8)
		binary.LittleEndian.PutUint64(slotHashBytes, slotHash)

		indexBytes := make([]byte, 4)
		for i := uint(0); i < replicationFactor; i++ {
			binary.LittleEndian.PutUint32(indexBytes, uint32(i))

			hasher := murmur3.New128()
			hasher.Write(slotHashBytes)
			hasher.Write(indexBytes)
			hash, _ := hasher.Sum128()
			hashRing.Put(int64(hash), slot)
		}
	}

	r := &ring{hashRing: hashRing}
	if _, minSlot := hashRing.Min(); minSlot != nil {
		r.minSlot = minSlot.(int)
	}
	return r
}

// slot consistently hashes the key onto one of the ring's slots
func (r *ring) slot(key []byte) int {
	raw, _ := murmur3.Sum128(key)
	_, slot := r.hashRing.Ceiling(int64(raw))
	if slot != nil {
		return slot.(int)
	}
	return r.minSlot
}
