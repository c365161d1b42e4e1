package main

import (
	"os"

	"spike-tools/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewSummerCommand()))
}
