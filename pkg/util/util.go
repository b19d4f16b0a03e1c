// Package util carries small helpers shared by the commands.
package util

import (
	"log"
	"os"
)

// InitLog points the standard logger at a file. The TUI owns the
// terminal, so diagnostics cannot go to stderr while the game runs.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
