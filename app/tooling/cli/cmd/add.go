package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	sender    string
	receiver  string
	amount    float64
	creatorID int
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Mine and append a new block for a transaction",
	Run:   addRun,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&sender, "sender", "s", "", "Party sending the amount.")
	addCmd.Flags().StringVarP(&receiver, "receiver", "r", "", "Party receiving the amount.")
	addCmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount being transferred.")
	addCmd.Flags().IntVarP(&creatorID, "creator", "c", 0, "Id of who is submitting the block.")
}

func addRun(cmd *cobra.Command, args []string) {
	payload := struct {
		Sender    string  `json:"sender"`
		Receiver  string  `json:"receiver"`
		Amount    float64 `json:"amount"`
		CreatorID int     `json:"creator_id"`
	}{
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		CreatorID: creatorID,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/blocks/add", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(body))
}
