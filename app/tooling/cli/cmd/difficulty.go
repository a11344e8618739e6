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

var difficulty int

// difficultyCmd represents the difficulty command.
var difficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "Change the proof-of-work difficulty for future blocks",
	Run:   difficultyRun,
}

func init() {
	rootCmd.AddCommand(difficultyCmd)
	difficultyCmd.Flags().IntVarP(&difficulty, "difficulty", "d", 4, "Number of leading zeros a winning hash needs.")
}

func difficultyRun(cmd *cobra.Command, args []string) {
	payload := struct {
		Difficulty int `json:"difficulty"`
	}{
		Difficulty: difficulty,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/chain/difficulty", url), bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
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
