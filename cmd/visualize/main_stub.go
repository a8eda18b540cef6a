//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The Collatz ant viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/visualize SEED` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For text output use ./cmd/collatz-ant.")
	os.Exit(2)
}
