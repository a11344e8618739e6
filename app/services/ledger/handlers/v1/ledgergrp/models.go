package ledgergrp

import "github.com/ardanlabs/ledger/foundation/ledger"

// newBlock is what a client provides to add a block to the chain.
type newBlock struct {
	Sender    string  `json:"sender" validate:"required"`
	Receiver  string  `json:"receiver" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	CreatorID int     `json:"creator_id" validate:"gte=0"`
}

// newDifficulty is what a client provides to change the mining difficulty.
// The upper bound keeps mining practical for an interactive session.
type newDifficulty struct {
	Difficulty int `json:"difficulty" validate:"required,gte=1,lte=8"`
}

// block is how a block is returned to a client, with its position in the
// chain and its live hash alongside the stored fields.
type block struct {
	Number    int           `json:"number"`
	Record    ledger.Record `json:"record"`
	CreatorID int           `json:"creator_id"`
	PrevHash  string        `json:"prev_hash"`
	Timestamp string        `json:"timestamp"`
	Nonce     uint64        `json:"nonce"`
	Hash      string        `json:"hash"`
}

// toBlock constructs the client view of a block at the specified position.
func toBlock(num int, blk ledger.Block) block {
	return block{
		Number:    num,
		Record:    blk.Record,
		CreatorID: blk.CreatorID,
		PrevHash:  blk.PrevHash,
		Timestamp: blk.Timestamp,
		Nonce:     blk.Nonce,
		Hash:      blk.Hash(),
	}
}
