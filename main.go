// ldx-cli is a tool for command-line access to the Open Linked Hub dataset portal.
package main

import (
	"github.com/ldxinsight/ldx-cli/cmd"
)

func main() {
	cmd.Run()
}
