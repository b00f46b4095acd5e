// Command admin runs maintenance tasks against the mood journal database.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(openStore).Execute(); err != nil {
		os.Exit(1)
	}
}
