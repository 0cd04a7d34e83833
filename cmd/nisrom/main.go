// Command nisrom is a thin demonstration of the analyzer facade: it does
// not replace the CSV rendering, romdb loading, or key-guessing tools
// that remain external collaborators to this module.
package main

import "github.com/fenugrec/nisrom-go/cmd/nisrom/cmd"

func main() {
	cmd.Execute()
}
