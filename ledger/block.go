package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenesisPayload is the fixed payload carried by every chain's first block.
const GenesisPayload = "Genesis Block"

// genesisPrevHash is the sentinel previous-hash of the genesis block.
const genesisPrevHash = "0"

// Block is a single entry in the chain. Once sealed by mining and appended
// it is never mutated.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	Payload   string `json:"payload"`
	PrevHash  string `json:"prev_hash"`
	Nonce     uint64 `json:"nonce"`
	Hash      string `json:"hash"`
}

// NewBlock constructs an unsealed block over the given fields with Nonce 0
// and Hash freshly computed. The result does not satisfy any proof-of-work
// condition yet; the chain's mining loop is responsible for that before the
// block may be appended.
func NewBlock(index int, timestamp int64, payload, prevHash string) Block {
	b := Block{
		Index:     index,
		Timestamp: timestamp,
		Payload:   payload,
		PrevHash:  prevHash,
	}
	b.Hash = b.ComputeHash()
	return b
}

// ComputeHash returns the lowercase hex SHA-256 digest of the block's
// identity fields. The canonical serialization is
//
//	<index>|<timestamp>|<len(payload)>:<payload>|<prevhash>|<nonce>
//
// with all integers in decimal. The payload is length-prefixed so that two
// different field tuples can never serialize to the same byte string. This
// encoding is fixed; changing it invalidates every previously sealed block.
func (b Block) ComputeHash() string {
	data := fmt.Sprintf("%d|%d|%d:%s|%s|%d",
		b.Index,
		b.Timestamp,
		len(b.Payload),
		b.Payload,
		b.PrevHash,
		b.Nonce,
	)
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
