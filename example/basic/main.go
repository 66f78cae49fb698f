// Package main demonstrates basic usage of the readline library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/readline"
)

func main() {
	rl, err := readline.New(">>> ")
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	fmt.Println("Basic Readline Example")
	fmt.Println("Type 'exit' to quit, or press Ctrl+D")
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
			if errors.Is(err, readline.ErrEOF) {
				fmt.Print("Goodbye!\r\n")
				return
			}
			if errors.Is(err, readline.ErrInterrupted) {
				continue
			}
			log.Printf("Error: %v", err)
			return
		}

		if line == "exit" {
			fmt.Print("Goodbye!\r\n")
			return
		}
		fmt.Printf("You entered: %s\r\n", line)
	}
}
