// cmd/pacgo/main.go
package main

import (
	"os"

	"pacgo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
