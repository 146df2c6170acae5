package main

import (
	"os"

	"textclean/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
