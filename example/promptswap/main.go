// Package main demonstrates mutating the prompt from another goroutine
// while an edit session is running.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/readline"
)

func main() {
	rl, err := readline.New("[--:--:--] $ ")
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	if err := readline.EnableRawMode(); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := readline.DisableRawMode(); err != nil {
			log.Printf("failed to restore terminal: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	// The clock goroutine rewrites the prompt once a second. The change is
	// picked up on the next re-render, i.e. the next key stroke.
	g.Go(func() error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				rl.SetPrompt(fmt.Sprintf("[%s] $ ", now.Format("15:04:05")))
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		for {
			line, err := rl.Run()
			if errors.Is(err, readline.ErrInterrupted) {
				continue
			}
			if err != nil {
				if errors.Is(err, readline.ErrEOF) {
					return nil
				}
				return err
			}
			fmt.Printf("-> %s\r\n", line)
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
