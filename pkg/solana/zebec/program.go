package zebec

import (
	"crypto/ed25519"
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("AknC341xog56SrnoK6j3mUvaD1Y7tYayx1sxUGpeYWdX")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	// Collects the program's cut on every withdraw and cancel
	FEE_RECEIVER_ID = ed25519.PublicKey(mustBase58Decode("EsDV3m3xUZ7g8QKa1kFdbZT18nNz8ddGJRcTK84WDQ7k"))
)

var (
	SYSTEM_PROGRAM_ID           = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SPL_TOKEN_PROGRAM_ID        = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))
	ASSOCIATED_TOKEN_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"))

	SYSVAR_RENT_PUBKEY = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)
