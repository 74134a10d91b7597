package zebec

import (
	"crypto/ed25519"

	"github.com/code-payments/zebec-go/pkg/solana/binary"
)

const (
	WhitelistEntrySize = (32 + // address
		1) // counter

	whitelistLenSize = 4

	// MaxWhitelistEntries caps whitelist payloads. A whitelist near the cap
	// won't fit in a single transaction once signatures and account keys
	// are included.
	MaxWhitelistEntries = 32
)

// WhitelistEntry is a co-signer authorized on a multisig safe, along with
// the number of approvals it has given.
type WhitelistEntry struct {
	Address ed25519.PublicKey
	Counter uint8
}

func getWhitelistSize(entries int) int {
	return whitelistLenSize + entries*WhitelistEntrySize
}

func validateWhitelist(ix InstructionType, entries []WhitelistEntry) error {
	if len(entries) > MaxWhitelistEntries {
		return newEncodingError(ix, "whitelist has %d entries, max is %d", len(entries), MaxWhitelistEntries)
	}
	for i, entry := range entries {
		if len(entry.Address) != ed25519.PublicKeySize {
			return newEncodingError(ix, "whitelist entry %d address must be %d bytes, got %d", i, ed25519.PublicKeySize, len(entry.Address))
		}
	}
	return nil
}

// putWhitelist writes the u32 entry count followed by every entry, and
// returns the offset immediately after the list.
func putWhitelist(w *binary.Writer, entries []WhitelistEntry) int {
	w.PutUint32(uint32(len(entries)))
	for _, entry := range entries {
		w.PutKey32(entry.Address).PutUint8(entry.Counter)
	}
	return w.Offset()
}

// getWhitelist reads a whitelist written by putWhitelist. The count is checked
// against the bytes remaining after the list, so that trailing fields of
// trailingSize bytes still fit.
func getWhitelist(src []byte, dst *[]WhitelistEntry, trailingSize int, offset *int) error {
	if len(src) < *offset+whitelistLenSize {
		return ErrInvalidInstructionData
	}

	var count uint32
	binary.GetUint32(src, &count, offset)
	if count > MaxWhitelistEntries {
		return ErrInvalidInstructionData
	}
	if len(src) != *offset+int(count)*WhitelistEntrySize+trailingSize {
		return ErrInvalidInstructionData
	}

	*dst = make([]WhitelistEntry, count)
	for i := range *dst {
		binary.GetKey32(src, &(*dst)[i].Address, offset)
		binary.GetUint8(src, &(*dst)[i].Counter, offset)
	}
	return nil
}
