package main

import (
	"os"

	"github.com/vercel/pathobject/internal/cmd"
)

func main() {
	os.Exit(cmd.RunWithArgs(os.Args[1:], pathobjectVersion))
}
