// Package main demonstrates basic usage of the fontprompt library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/fontprompt"
	"github.com/nao1215/fontprompt/font"
)

func main() {
	// Create a prompt offering a handful of fonts with default settings
	p, err := fontprompt.New([]font.Font{font.Bold, font.Italic, font.Script, font.Fraktur, font.Monospace})
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("Basic Font Prompt Example")
	fmt.Println("Type some text, pick a font with Up/Down and press Enter")
	fmt.Println("Press Ctrl+C to quit")
	fmt.Println()

	result, err := p.Run()
	if err != nil {
		if errors.Is(err, fontprompt.ErrInterrupted) {
			fmt.Println("Goodbye!")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("You picked: %s\n", result)
}
