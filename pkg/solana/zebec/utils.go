package zebec

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

func checkKey(ix InstructionType, name string, key ed25519.PublicKey) error {
	if len(key) != ed25519.PublicKeySize {
		return newEncodingError(ix, "%s must be %d bytes, got %d", name, ed25519.PublicKeySize, len(key))
	}
	return nil
}

type namedKey struct {
	name string
	key  ed25519.PublicKey
}

func checkKeys(ix InstructionType, keys ...namedKey) error {
	for _, k := range keys {
		if err := checkKey(ix, k.name, k.key); err != nil {
			return err
		}
	}
	return nil
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
