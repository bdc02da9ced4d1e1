package main

import (
	"github.com/mrodgar/gymrat/internal/cli"
)

func main() {
	cli.Execute()
}
