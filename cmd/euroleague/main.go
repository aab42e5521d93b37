package main

import (
	"os"

	"github.com/courtside/euroleague-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
