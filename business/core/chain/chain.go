// Package chain provides the session-scoped API for the ledger. A Core value
// owns the single chain instance for the life of the process: it is
// constructed once in main, handed to the handlers, and reused across every
// request rather than being rebuilt.
package chain

import (
	"fmt"
	"net/http"
	"sync"

	v1 "github.com/ardanlabs/ledger/business/web/v1"
	"github.com/ardanlabs/ledger/foundation/ledger"
)

// The underlying chain assumes a single writer, so the Core serializes all
// access on behalf of the concurrent web boundary. Mining happens while the
// lock is held; a second add waits for the first to finish, which preserves
// the one-writer-per-process model.

// Config represents the configuration required to construct the core.
type Config struct {
	Difficulty int
	EvHandler  ledger.EventHandler
}

// Core manages the ledger chain for the life of the session.
type Core struct {
	mu        sync.Mutex
	chain     *ledger.Chain
	evHandler ledger.EventHandler
}

// New constructs a core with a freshly created chain holding just the
// genesis block.
func New(cfg Config) (*Core, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	chain := ledger.New(ev)

	if cfg.Difficulty != 0 {
		if err := chain.SetDifficulty(cfg.Difficulty); err != nil {
			return nil, fmt.Errorf("setting difficulty: %w", err)
		}
	}

	core := Core{
		chain:     chain,
		evHandler: ev,
	}

	return &core, nil
}

// AddBlock mines and appends a new block carrying the specified transaction.
// The call blocks for the full duration of the proof-of-work search.
func (c *Core) AddBlock(sender string, receiver string, amount float64, creatorID int) (ledger.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evHandler("core: AddBlock: started: sender[%s] receiver[%s]", sender, receiver)
	defer c.evHandler("core: AddBlock: completed")

	block, err := c.chain.AddBlock(sender, receiver, amount, creatorID)
	if err != nil {
		return ledger.Block{}, v1.NewRequestError(err, http.StatusBadRequest)
	}

	return block, nil
}

// Validate reports whether every block's parent hash still matches the live
// hash of its predecessor.
func (c *Core) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evHandler("core: Validate: walking %d blocks", c.chain.Len())

	return c.chain.Validate()
}

// SetDifficulty changes the proof-of-work cost for future blocks.
func (c *Core) SetDifficulty(difficulty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.chain.SetDifficulty(difficulty); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	c.evHandler("core: SetDifficulty: difficulty[%d]", difficulty)

	return nil
}

// =============================================================================

// RetrieveBlocks returns a copy of the full chain, genesis first.
func (c *Core) RetrieveBlocks() []ledger.Block {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.chain.Blocks()
}

// RetrieveBlockByNumber returns a copy of the block at the specified
// position in the chain.
func (c *Core) RetrieveBlockByNumber(num int) (ledger.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	block, err := c.chain.BlockByNumber(num)
	if err != nil {
		return ledger.Block{}, v1.NewRequestError(err, http.StatusNotFound)
	}

	return block, nil
}

// RetrieveLatestBlock returns a copy of the current tail of the chain.
func (c *Core) RetrieveLatestBlock() ledger.Block {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.chain.LatestBlock()
}

// RetrieveGenesis returns a copy of the genesis block.
func (c *Core) RetrieveGenesis() ledger.Block {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.chain.Genesis()
}

// RetrieveDifficulty returns the current proof-of-work difficulty.
func (c *Core) RetrieveDifficulty() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.chain.Difficulty()
}
