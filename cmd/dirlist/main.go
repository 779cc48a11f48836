// dirlist lists directory contents with type icons, colours and sizes.
package main

import (
	"os"

	"github.com/rescale/dirlist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
