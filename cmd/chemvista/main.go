package main

import (
	"chemvista/internal/cli"
)

func main() {
	cli.ExitOnError(cli.Execute())
}
