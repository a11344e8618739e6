package chain_test

import (
	"testing"

	"github.com/ardanlabs/ledger/business/core/chain"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_Core(t *testing.T) {
	t.Log("Given the need to manage the chain for the life of a session.")
	{
		t.Logf("\tTest 0:\tWhen adding and retrieving blocks through the core.")
		{
			core, err := chain.New(chain.Config{Difficulty: 1})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the core: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to construct the core.", success)

			if core.RetrieveDifficulty() != 1 {
				t.Errorf("\t%s\tTest 0:\tShould carry the configured difficulty: got %d.", failed, core.RetrieveDifficulty())
			} else {
				t.Logf("\t%s\tTest 0:\tShould carry the configured difficulty.", success)
			}

			blk, err := core.AddBlock("Ann", "Bob", 10, 1)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to add a block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to add a block.", success)

			blocks := core.RetrieveBlocks()
			if len(blocks) != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould have 2 blocks including genesis: got %d.", failed, len(blocks))
			}
			t.Logf("\t%s\tTest 0:\tShould have 2 blocks including genesis.", success)

			got, err := core.RetrieveBlockByNumber(1)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to retrieve block 1: %v", failed, err)
			}
			if got.Hash() != blk.Hash() {
				t.Errorf("\t%s\tTest 0:\tShould retrieve the block that was mined.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould retrieve the block that was mined.", success)
			}

			if core.RetrieveLatestBlock().Hash() != blk.Hash() {
				t.Errorf("\t%s\tTest 0:\tShould report the mined block as the tail.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould report the mined block as the tail.", success)
			}

			if !core.Validate() {
				t.Errorf("\t%s\tTest 0:\tShould report the chain as valid.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould report the chain as valid.", success)
			}
		}

		t.Logf("\tTest 1:\tWhen providing bad inputs at the boundary.")
		{
			core, err := chain.New(chain.Config{Difficulty: 1})
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to construct the core: %v", failed, err)
			}

			if err := core.SetDifficulty(0); err == nil {
				t.Errorf("\t%s\tTest 1:\tShould not be able to set a zero difficulty.", failed)
			} else {
				t.Logf("\t%s\tTest 1:\tShould not be able to set a zero difficulty.", success)
			}

			if _, err := core.RetrieveBlockByNumber(10); err == nil {
				t.Errorf("\t%s\tTest 1:\tShould not be able to retrieve a missing block.", failed)
			} else {
				t.Logf("\t%s\tTest 1:\tShould not be able to retrieve a missing block.", success)
			}

			if _, err := chain.New(chain.Config{Difficulty: -1}); err == nil {
				t.Errorf("\t%s\tTest 1:\tShould not be able to construct a core with a negative difficulty.", failed)
			} else {
				t.Logf("\t%s\tTest 1:\tShould not be able to construct a core with a negative difficulty.", success)
			}
		}
	}
}
