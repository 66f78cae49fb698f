// Package main demonstrates persistent history with Up/Down navigation.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/readline"
)

func main() {
	// History survives restarts: run this example twice and press Up.
	rl, err := readline.New("history> ",
		readline.WithHistoryFile("~/.readline_example_history"),
		readline.WithHistorySize(100),
		readline.WithColorScheme(readline.ThemeColorful),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	fmt.Println("History Example")
	fmt.Println("Use Up/Down arrows to browse previous commands")
	fmt.Println()

	if err := readline.EnableRawMode(); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := readline.DisableRawMode(); err != nil {
			log.Printf("failed to restore terminal: %v", err)
		}
	}()

	for {
		line, err := rl.Run()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupted) {
				continue
			}
			if errors.Is(err, readline.ErrEOF) {
				break
			}
			log.Printf("Error: %v", err)
			break
		}
		fmt.Printf("ran: %s\r\n", line)
	}

	fmt.Print("Stored history:\r\n")
	for i, entry := range rl.History() {
		fmt.Printf("  %d  %s\r\n", i+1, entry)
	}
}
