package main

import (
	"os"

	"github.com/odyssey-erp/billdesk/cmd/billdesk/cli"
)

func main() {
	os.Exit(cli.Execute())
}
