// Package main demonstrates driving a session from a custom input source
// instead of the terminal.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/readline"
)

func main() {
	// The script types a command, fixes a typo with arrow keys and Delete,
	// then submits. Any io.Reader works here: a pipe, a network stream, a
	// replay file.
	script := "ls -la Deskrop\x1b[D\x1b[D\x1b[D\x1b[D\x1b[C\x1b[3~t\r"

	rl, err := readline.New("demo> ", readline.WithReader(strings.NewReader(script)))
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Run()
		if err != nil {
			if errors.Is(err, readline.ErrEOF) {
				return
			}
			log.Fatal(err)
		}
		fmt.Printf("\nsubmitted: %q\n", line)
	}
}
