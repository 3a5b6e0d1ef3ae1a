// Command militarytime validates 24-hour time ranges from the command line
// and serves the same validation over HTTP.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// check already printed its report; only surface other failures.
		if !errors.Is(err, ErrInvalidRange) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
