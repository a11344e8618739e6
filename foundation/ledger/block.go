package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// GenesisPrevHash is the sentinel parent hash carried by the genesis block,
// which has no real predecessor.
const GenesisPrevHash = "0"

// timeFormat is the fixed-width clock format captured at block construction.
const timeFormat = "15:04:05"

// =============================================================================

// Block represents a single record sealed into the chain. Only the nonce
// changes after construction, and only while the block is being mined.
type Block struct {
	Record    Record `json:"record"`
	CreatorID int    `json:"creator_id"` // Identifies who submitted the block.
	PrevHash  string `json:"prev_hash"`  // Hash of the previous block in the chain.
	Timestamp string `json:"timestamp"`  // Clock time the block was constructed.
	Nonce     uint64 `json:"nonce"`      // Value identified to solve the hash puzzle.
}

// newBlock constructs a candidate block referencing the specified parent
// hash. The nonce starts at zero and is discovered by the mining operation.
func newBlock(record Record, creatorID int, prevHash string) Block {
	return Block{
		Record:    record,
		CreatorID: creatorID,
		PrevHash:  prevHash,
		Timestamp: time.Now().UTC().Format(timeFormat),
	}
}

// Hash returns the unique hash for the block. The digest input is the
// concatenation, in fixed field order, of the textual representations of the
// record, creator id, timestamp, parent hash and nonce. The function is pure:
// it can be called any number of times and returns the same digest as long as
// the fields are unchanged.
func (b Block) Hash() string {
	h := sha256.New()
	h.Write([]byte(b.Record.String()))
	h.Write([]byte(strconv.Itoa(b.CreatorID)))
	h.Write([]byte(b.Timestamp))
	h.Write([]byte(b.PrevHash))
	h.Write([]byte(strconv.FormatUint(b.Nonce, 10)))

	return hex.EncodeToString(h.Sum(nil))
}

// =============================================================================

// isHashSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of 0's.
func isHashSolved(difficulty int, hash string) bool {
	const match = "0000000000000000"

	if difficulty < 1 || difficulty > len(match) {
		return false
	}
	if len(hash) != 64 {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}
