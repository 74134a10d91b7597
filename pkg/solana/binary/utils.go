package binary

import (
	"crypto/ed25519"
	"encoding/binary"
)

// The Put* and Get* helpers operate at dst[*offset:] and advance the offset by
// the size of the value. Writing or reading past the end of the buffer panics.

func PutKey32(dst []byte, src []byte, offset *int) {
	copy(dst[*offset:*offset+ed25519.PublicKeySize], src)
	*offset += ed25519.PublicKeySize
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func PutUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}

func PutBool(dst []byte, v bool, offset *int) {
	if v {
		PutUint8(dst, 1, offset)
	} else {
		PutUint8(dst, 0, offset)
	}
}

func GetKey32(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:*offset+ed25519.PublicKeySize])
	*offset += ed25519.PublicKeySize
}

func GetUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}

func GetUint32(src []byte, dst *uint32, offset *int) {
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
}

func GetUint8(src []byte, dst *uint8, offset *int) {
	*dst = src[*offset]
	*offset += 1
}

func GetBool(src []byte, dst *bool, offset *int) {
	*dst = src[*offset] == 1
	*offset += 1
}
