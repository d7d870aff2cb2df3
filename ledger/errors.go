package ledger

import (
	"fmt"

	"github.com/pkg/errors"
)

// FailureKind classifies why chain verification rejected a block.
type FailureKind string

const (
	// HashMismatch means a block's stored hash does not match the digest
	// recomputed from its stored fields: the block was tampered with after
	// sealing, or was never properly sealed.
	HashMismatch FailureKind = "HASH_MISMATCH"

	// LinkBroken means a block's previous-hash does not match the hash of
	// the block before it: the chain was reordered or relinked.
	LinkBroken FailureKind = "LINK_BROKEN"

	// ProofOfWorkNotMet means a block's hash does not carry the required
	// number of leading zero hex characters: the block was inserted without
	// being mined.
	ProofOfWorkNotMet FailureKind = "POW_NOT_MET"
)

// ValidationError reports the first block that failed verification and the
// kind of check it failed. It is a query result, not a fatal condition.
type ValidationError struct {
	Index  int
	Kind   FailureKind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("block %d invalid: %s: %s", e.Index, e.Kind, e.Detail)
}

// ErrMiningAborted is returned by MineBlockContext when the context is
// cancelled before a qualifying hash is found. The chain is left unchanged.
var ErrMiningAborted = errors.New("mining aborted")

// ErrNonceExhausted is returned when the nonce search space is exhausted
// without finding a qualifying hash. Retrying with a fresh timestamp yields
// a new search space.
var ErrNonceExhausted = errors.New("nonce space exhausted")
