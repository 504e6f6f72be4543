package main

import (
	"fmt"
	"os"

	"github.com/mandelsoft/vfs/pkg/osfs"
)

func main() {
	if err := newRootCmd(os.Stdout, osfs.OsFs).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
