package ledgergrp_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/ardanlabs/ledger/app/services/ledger/handlers"
	"github.com/ardanlabs/ledger/business/core/chain"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/logger"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// block is the client view of a block returned by the API.
type block struct {
	Number int `json:"number"`
	Record struct {
		Sender   string  `json:"sender"`
		Receiver string  `json:"receiver"`
		Amount   float64 `json:"amount"`
	} `json:"record"`
	CreatorID int    `json:"creator_id"`
	PrevHash  string `json:"prev_hash"`
	Timestamp string `json:"timestamp"`
	Nonce     uint64 `json:"nonce"`
	Hash      string `json:"hash"`
}

func newMux(t *testing.T) http.Handler {
	log, err := logger.New("TEST")
	if err != nil {
		t.Fatal(err)
	}

	core, err := chain.New(chain.Config{Difficulty: 1})
	if err != nil {
		t.Fatal(err)
	}

	return handlers.PublicMux(handlers.MuxConfig{
		Shutdown: make(chan os.Signal, 1),
		Log:      log,
		Core:     core,
		Evts:     events.New(),
	})
}

func Test_AddAndListBlocks(t *testing.T) {
	mux := newMux(t)

	t.Log("Given the need to add and list blocks through the web api.")
	{
		t.Logf("\tTest 0:\tWhen submitting a valid transaction.")
		{
			body := strings.NewReader(`{"sender":"Ann","receiver":"Bob","amount":10,"creator_id":1}`)
			r := httptest.NewRequest(http.MethodPost, "/v1/blocks/add", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			if w.Code != http.StatusCreated {
				t.Fatalf("\t%s\tTest 0:\tShould receive a status code of 201: got %d: %s", failed, w.Code, w.Body.String())
			}
			t.Logf("\t%s\tTest 0:\tShould receive a status code of 201.", success)

			var blk block
			if err := json.Unmarshal(w.Body.Bytes(), &blk); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to unmarshal the response: %v", failed, err)
			}

			if !strings.HasPrefix(blk.Hash, "0") {
				t.Errorf("\t%s\tTest 0:\tShould have a hash that satisfies difficulty 1: got %s.", failed, blk.Hash)
			} else {
				t.Logf("\t%s\tTest 0:\tShould have a hash that satisfies difficulty 1.", success)
			}

			if blk.Number != 1 {
				t.Errorf("\t%s\tTest 0:\tShould be block number 1: got %d.", failed, blk.Number)
			} else {
				t.Logf("\t%s\tTest 0:\tShould be block number 1.", success)
			}
		}

		t.Logf("\tTest 1:\tWhen listing the chain.")
		{
			r := httptest.NewRequest(http.MethodGet, "/v1/blocks/list", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("\t%s\tTest 1:\tShould receive a status code of 200: got %d.", failed, w.Code)
			}
			t.Logf("\t%s\tTest 1:\tShould receive a status code of 200.", success)

			var blocks []block
			if err := json.Unmarshal(w.Body.Bytes(), &blocks); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to unmarshal the response: %v", failed, err)
			}

			if len(blocks) != 2 {
				t.Fatalf("\t%s\tTest 1:\tShould have 2 blocks including genesis: got %d.", failed, len(blocks))
			}
			t.Logf("\t%s\tTest 1:\tShould have 2 blocks including genesis.", success)

			if blocks[1].PrevHash != blocks[0].Hash {
				t.Errorf("\t%s\tTest 1:\tShould have block 1 linked to the genesis hash.", failed)
			} else {
				t.Logf("\t%s\tTest 1:\tShould have block 1 linked to the genesis hash.", success)
			}
		}

		t.Logf("\tTest 2:\tWhen inspecting a single block.")
		{
			r := httptest.NewRequest(http.MethodGet, "/v1/blocks/list/1", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("\t%s\tTest 2:\tShould receive a status code of 200: got %d.", failed, w.Code)
			}
			t.Logf("\t%s\tTest 2:\tShould receive a status code of 200.", success)

			r = httptest.NewRequest(http.MethodGet, "/v1/blocks/list/9", nil)
			w = httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			if w.Code != http.StatusNotFound {
				t.Errorf("\t%s\tTest 2:\tShould receive a status code of 404 for a missing block: got %d.", failed, w.Code)
			} else {
				t.Logf("\t%s\tTest 2:\tShould receive a status code of 404 for a missing block.", success)
			}
		}

		t.Logf("\tTest 3:\tWhen validating the chain.")
		{
			r := httptest.NewRequest(http.MethodGet, "/v1/chain/validate", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("\t%s\tTest 3:\tShould receive a status code of 200: got %d.", failed, w.Code)
			}

			var result struct {
				Valid bool `json:"valid"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
				t.Fatalf("\t%s\tTest 3:\tShould be able to unmarshal the response: %v", failed, err)
			}

			if !result.Valid {
				t.Errorf("\t%s\tTest 3:\tShould report the chain as valid.", failed)
			} else {
				t.Logf("\t%s\tTest 3:\tShould report the chain as valid.", success)
			}
		}
	}
}

func Test_Validation(t *testing.T) {
	mux := newMux(t)

	t.Log("Given the need to reject malformed requests at the boundary.")
	{
		t.Logf("\tTest 0:\tWhen submitting a transaction with missing fields.")
		{
			body := strings.NewReader(`{"receiver":"Bob","amount":10,"creator_id":1}`)
			r := httptest.NewRequest(http.MethodPost, "/v1/blocks/add", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("\t%s\tTest 0:\tShould receive a status code of 400: got %d.", failed, w.Code)
			}
			t.Logf("\t%s\tTest 0:\tShould receive a status code of 400.", success)

			var er struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to unmarshal the response: %v", failed, err)
			}

			if _, exists := er.Fields["sender"]; !exists {
				t.Errorf("\t%s\tTest 0:\tShould call out the sender field: got %+v.", failed, er)
			} else {
				t.Logf("\t%s\tTest 0:\tShould call out the sender field.", success)
			}
		}

		t.Logf("\tTest 1:\tWhen setting an out of range difficulty.")
		{
			for _, d := range []int{0, 9} {
				body := strings.NewReader(fmt.Sprintf(`{"difficulty":%d}`, d))
				r := httptest.NewRequest(http.MethodPut, "/v1/chain/difficulty", body)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, r)

				if w.Code != http.StatusBadRequest {
					t.Errorf("\t%s\tTest 1:\tShould receive a status code of 400 for difficulty %d: got %d.", failed, d, w.Code)
				} else {
					t.Logf("\t%s\tTest 1:\tShould receive a status code of 400 for difficulty %d.", success, d)
				}
			}
		}

		t.Logf("\tTest 2:\tWhen setting a difficulty in range.")
		{
			body := strings.NewReader(`{"difficulty":2}`)
			r := httptest.NewRequest(http.MethodPut, "/v1/chain/difficulty", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("\t%s\tTest 2:\tShould receive a status code of 200: got %d.", failed, w.Code)
			} else {
				t.Logf("\t%s\tTest 2:\tShould receive a status code of 200.", success)
			}
		}
	}
}
