//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lifelab requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifelab` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal front end use ./cmd/lifelab-term.")
	os.Exit(2)
}
