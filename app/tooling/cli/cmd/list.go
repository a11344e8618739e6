package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var number int

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the chain, or a single block by number",
	Run:   listRun,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&number, "number", "n", -1, "Block number to inspect, genesis is 0.")
}

func listRun(cmd *cobra.Command, args []string) {
	endpoint := fmt.Sprintf("%s/v1/blocks/list", url)
	if number >= 0 {
		endpoint = fmt.Sprintf("%s/%d", endpoint, number)
	}

	resp, err := http.Get(endpoint)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(out))
}
