package ledger

import (
	"context"
	"crypto/sha256"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// MaxDifficulty is the highest accepted difficulty: a SHA-256 hex digest has
// 64 characters, so no hash can carry more leading zeros than that.
const MaxDifficulty = sha256.Size * 2

// Blockchain is an append-only sequence of hash-linked, proof-of-work sealed
// blocks. A mutex serializes access; mining holds the write lock for the
// whole search, so there is exactly one writer at a time.
type Blockchain struct {
	mu         sync.RWMutex
	blocks     []Block
	difficulty int
	target     string // "0" repeated difficulty times
}

// NewBlockchain creates a chain containing only the genesis block. The
// genesis block has index 0, previous hash "0", the fixed genesis payload,
// and nonce 0; it is never mined and is exempt from the proof-of-work
// condition during verification.
//
// difficulty is the number of leading zero hex characters required of every
// subsequently mined block's hash. Values outside [0, MaxDifficulty] are
// rejected.
func NewBlockchain(difficulty int) (*Blockchain, error) {
	if difficulty < 0 {
		return nil, errors.Errorf("negative difficulty %d", difficulty)
	}
	if difficulty > MaxDifficulty {
		return nil, errors.Errorf("difficulty %d exceeds the %d hex characters of a SHA-256 digest", difficulty, MaxDifficulty)
	}

	bc := &Blockchain{
		blocks:     make([]Block, 0, 1),
		difficulty: difficulty,
		target:     strings.Repeat("0", difficulty),
	}

	genesis := NewBlock(0, time.Now().Unix(), GenesisPayload, genesisPrevHash)
	bc.blocks = append(bc.blocks, genesis)

	return bc, nil
}

// MineBlock mines a block carrying payload and appends it to the chain.
// Equivalent to MineBlockContext with a background context.
func (bc *Blockchain) MineBlock(payload string) (Block, error) {
	return bc.MineBlockContext(context.Background(), payload)
}

// MineBlockContext builds a candidate block linked to the current tip and
// increments its nonce until the hash has the required number of leading
// zero hex characters, then appends the sealed block and returns it.
//
// The search is an unbounded brute force; expected iterations grow as
// 16^difficulty. The context is checked once per iteration: cancellation
// returns ErrMiningAborted and leaves the chain unchanged. Exhausting the
// 64-bit nonce space returns ErrNonceExhausted likewise.
func (bc *Blockchain) MineBlockContext(ctx context.Context, payload string) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]
	candidate := NewBlock(latest.Index+1, time.Now().Unix(), payload, latest.Hash)

	for !bc.meetsDifficulty(candidate.Hash) {
		select {
		case <-ctx.Done():
			return Block{}, errors.Wrapf(ErrMiningAborted, "block %d after %d attempts", candidate.Index, candidate.Nonce+1)
		default:
		}
		if candidate.Nonce == math.MaxUint64 {
			return Block{}, errors.Wrapf(ErrNonceExhausted, "block %d", candidate.Index)
		}
		candidate.Nonce++
		candidate.Hash = candidate.ComputeHash()
	}

	bc.blocks = append(bc.blocks, candidate)

	return candidate, nil
}

// Verify validates the integrity of the entire chain from stored fields
// alone, with no cached state. The genesis block is checked against its
// fixed template; every later block is checked for hash integrity, link
// integrity, and the proof-of-work condition, in that order. Verification
// stops at the first failure and reports it as a *ValidationError; a nil
// return means the chain is intact.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	genesis := bc.blocks[0]
	if genesis.Index != 0 || genesis.PrevHash != genesisPrevHash {
		return &ValidationError{Index: 0, Kind: LinkBroken, Detail: "genesis block does not match the fixed template"}
	}
	if genesis.Hash != genesis.ComputeHash() {
		return &ValidationError{Index: 0, Kind: HashMismatch, Detail: "genesis hash does not match its recomputed digest"}
	}

	for i := 1; i < len(bc.blocks); i++ {
		current := bc.blocks[i]
		previous := bc.blocks[i-1]

		if err := bc.validateBlock(i, current, previous); err != nil {
			return err
		}
	}

	return nil
}

// IsValid reports whether Verify accepts the chain.
func (bc *Blockchain) IsValid() bool {
	return bc.Verify() == nil
}

// validateBlock verifies that the block at chain position pos is a properly
// sealed successor of previous: its stored hash matches the recomputed
// digest, it links to previous by hash, and its hash meets the difficulty
// target. Failures report pos rather than the block's stored index, so a
// reordered chain is flagged at the first broken boundary.
func (bc *Blockchain) validateBlock(pos int, current, previous Block) error {
	if expected := current.ComputeHash(); current.Hash != expected {
		return &ValidationError{
			Index:  pos,
			Kind:   HashMismatch,
			Detail: "stored hash " + current.Hash + " does not match recomputed " + expected,
		}
	}

	if current.PrevHash != previous.Hash {
		return &ValidationError{
			Index:  pos,
			Kind:   LinkBroken,
			Detail: "prev hash " + current.PrevHash + " does not match predecessor hash " + previous.Hash,
		}
	}

	if !bc.meetsDifficulty(current.Hash) {
		return &ValidationError{
			Index:  pos,
			Kind:   ProofOfWorkNotMet,
			Detail: "hash " + current.Hash + " lacks a " + strings.Repeat("0", bc.difficulty) + " prefix",
		}
	}

	return nil
}

// meetsDifficulty reports whether hash carries the required leading zeros.
func (bc *Blockchain) meetsDifficulty(hash string) bool {
	return strings.HasPrefix(hash, bc.target)
}

// GetLatest returns the most recently appended block.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, errors.New("blockchain is empty")
	}

	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain. Returns an error
// if the index is out of range.
func (bc *Blockchain) GetByIndex(index int) (*Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return nil, errors.Errorf("index %d out of range", index)
	}

	return &bc.blocks[index], nil
}

// Blocks returns a snapshot copy of the chain in order. Mutating the
// returned slice does not affect the chain.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	snapshot := make([]Block, len(bc.blocks))
	copy(snapshot, bc.blocks)
	return snapshot
}

// Len returns the number of blocks in the chain, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Difficulty returns the number of leading zero hex characters required of
// every mined block's hash.
func (bc *Blockchain) Difficulty() int {
	return bc.difficulty
}
