// Package ledger implements an append-only blockchain whose blocks are
// admitted through a proof-of-work search and linked by SHA-256 hashes.
//
// # Core Components
//
// Blockchain: An append-only log of opaque payloads. Each new block is
// sealed by brute-forcing a nonce until the block hash carries a configured
// number of leading zero hex characters.
//
// Block: A single ledger entry holding its payload, its position, the hash
// of its predecessor, and the nonce witnessing the proof-of-work search. A
// block computes its own content-addressed identity.
//
// # Security Properties
//
// The blockchain provides:
//   - Immutability: Once sealed and appended, blocks are never modified
//   - Verifiability: The whole chain is re-checkable from stored fields alone
//   - Tamper detection: Any modification breaks the hash or the chain link
//   - Costly admission: Every non-genesis block carries a proof-of-work witness
//
// # Usage
//
// Create a blockchain with a difficulty, then mine blocks as payloads
// arrive. The Verify method can be called at any time; it reports the index
// and kind of the first inconsistency it finds, so callers can tell a
// tampered block from a broken link or a forged, unmined insertion.
package ledger
