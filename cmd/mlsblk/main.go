package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mlsblk/mlsblk/internal/cmd"
	"github.com/mlsblk/mlsblk/internal/contextual"
	"github.com/mlsblk/mlsblk/internal/system"
)

func main() {
	sys, err := system.Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mlsblk: cannot identify system: %v\n", err)
		os.Exit(1)
	}
	p := sys.Product()
	if p == nil {
		fmt.Fprintln(os.Stderr, "mlsblk: no product associated with identified system")
		os.Exit(1)
	}

	ctx := contextual.WithProduct(context.Background(), p)

	if err := cmd.MainCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
