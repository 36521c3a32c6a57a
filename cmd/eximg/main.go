package main

import (
	"os"

	"github.com/dmeade/eximg/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
