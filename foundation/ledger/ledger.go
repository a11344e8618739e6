// Package ledger implements an append-only chain of transaction records
// where each block is sealed by a proof-of-work puzzle and linked to its
// predecessor by a content hash.
//
// The chain is a single-writer data structure. It performs no locking of its
// own; callers that share a chain across goroutines must serialize access
// above this package.
package ledger

import (
	"errors"
	"fmt"
)

// DefaultDifficulty is the number of leading zero characters a winning hash
// must carry when the caller doesn't change it at runtime.
const DefaultDifficulty = 4

// ErrInvalidDifficulty is returned when the difficulty is set to a value the
// proof-of-work puzzle can't meaningfully use. A difficulty below one would
// be solved by the first hash attempt.
var ErrInvalidDifficulty = errors.New("difficulty must be a positive number")

// EventHandler defines a function that is called when events occur during
// the mining of a block.
type EventHandler func(v string, args ...any)

// =============================================================================

// Chain maintains the ordered sequence of blocks and owns the mining and
// linkage-validation procedures. The sequence is never empty: the genesis
// block is inserted at construction and never removed.
type Chain struct {
	blocks     []Block
	difficulty int
	evHandler  EventHandler
}

// New constructs a chain with the genesis block already appended. The event
// handler receives mining diagnostics and may be nil.
func New(ev EventHandler) *Chain {
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	genesis := newBlock(Record{}, 0, GenesisPrevHash)

	return &Chain{
		blocks:     []Block{genesis},
		difficulty: DefaultDifficulty,
		evHandler:  ev,
	}
}

// AddBlock constructs a candidate block for the specified transaction
// referencing the current tail's hash, mines it, and appends it to the
// chain. Once mined the block is unconditionally appended; the only failure
// mode is a record that can't be represented.
func (c *Chain) AddBlock(sender string, receiver string, amount float64, creatorID int) (Block, error) {
	record, err := NewRecord(sender, receiver, amount)
	if err != nil {
		return Block{}, fmt.Errorf("constructing record: %w", err)
	}

	tail := c.blocks[len(c.blocks)-1]
	block := c.proofOfWork(newBlock(record, creatorID, tail.Hash()))

	c.blocks = append(c.blocks, block)

	return block, nil
}

// proofOfWork finds a nonce that makes the block's hash start with the
// difficulty number of zero characters. The search runs on a private copy of
// the candidate so a half-mined block is never visible; the sealed block is
// returned with the winning nonce frozen. In the worst case this is an
// unbounded brute-force search with no timeout.
func (c *Chain) proofOfWork(b Block) Block {
	c.evHandler("ledger: proofOfWork: mining: started: difficulty[%d]", c.difficulty)

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			c.evHandler("ledger: proofOfWork: mining: attempts[%d]", attempts)
		}

		hash := b.Hash()
		if !isHashSolved(c.difficulty, hash) {
			b.Nonce++
			continue
		}

		c.evHandler("ledger: proofOfWork: mining: solved: prevBlk[%s]: newBlk[%s]", b.PrevHash, hash)
		c.evHandler("ledger: proofOfWork: mining: attempts[%d]", attempts)

		return b
	}
}

// Validate walks the chain from block 1 onward, comparing each block's
// stored parent hash against the live, recomputed hash of its predecessor.
// Any mismatch means a field in some earlier block was altered after being
// linked to, and the walk short-circuits. The chain is never mutated.
func (c *Chain) Validate() bool {
	hash := c.blocks[0].Hash()

	for _, block := range c.blocks[1:] {
		if block.PrevHash != hash {
			return false
		}

		hash = block.Hash()
	}

	return true
}

// SetDifficulty changes the proof-of-work cost for future mining operations.
// Already-mined blocks are never re-mined.
func (c *Chain) SetDifficulty(difficulty int) error {
	if difficulty < 1 {
		return ErrInvalidDifficulty
	}

	c.difficulty = difficulty

	return nil
}

// Difficulty returns the current proof-of-work difficulty.
func (c *Chain) Difficulty() int {
	return c.difficulty
}

// =============================================================================

// Blocks returns a copy of the full chain sequence, genesis first.
func (c *Chain) Blocks() []Block {
	blocks := make([]Block, len(c.blocks))
	copy(blocks, c.blocks)

	return blocks
}

// BlockByNumber returns a copy of the block at the specified position in the
// chain, with genesis at position 0.
func (c *Chain) BlockByNumber(num int) (Block, error) {
	if num < 0 || num >= len(c.blocks) {
		return Block{}, errors.New("block does not exist")
	}

	return c.blocks[num], nil
}

// LatestBlock returns a copy of the current tail of the chain.
func (c *Chain) LatestBlock() Block {
	return c.blocks[len(c.blocks)-1]
}

// Genesis returns a copy of the genesis block.
func (c *Chain) Genesis() Block {
	return c.blocks[0]
}

// Len returns the number of blocks in the chain, including genesis.
func (c *Chain) Len() int {
	return len(c.blocks)
}
