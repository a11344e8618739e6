// This program provides a command line client for the ledger service.
package main

import "github.com/ardanlabs/ledger/app/tooling/cli/cmd"

func main() {
	cmd.Execute()
}
