package stream

import "github.com/code-payments/zebec-go/pkg/common"

// Result is the outcome of a submitted stream operation.
type Result struct {
	// Signature is the base58 encoded transaction signature.
	Signature string

	// StreamDataAddress is only set when a stream is initialized, and is the
	// account that must be passed to every later operation on the stream.
	StreamDataAddress *common.Account
}
