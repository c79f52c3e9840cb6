package main

import (
	"os"

	"github.com/draftmsg/draftmsg/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
