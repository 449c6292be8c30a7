package main

import (
	"os"

	"github.com/arcanaland/fortunes/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
