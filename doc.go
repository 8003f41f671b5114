// Package fontprompt provides an interactive terminal prompt that previews the
// typed text in several fonts and lets the user pick one.
//
// While the user types, the prompt shows the raw input on one line and, below
// it, one preview line per font. Up and Down move the selection marker and
// Enter replaces the whole block with the input rendered in the selected font.
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/fontprompt"
//		"github.com/nao1215/fontprompt/font"
//	)
//
//	func main() {
//		p, err := fontprompt.New([]font.Font{font.Bold, font.Script, font.Fraktur})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		result, err := p.Run()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(result)
//	}
//
// Screen Layout:
//
// A session reserves len(fonts)+1 lines below the cursor before reading any
// key. Typing "hi" with fonts bold and script selected on bold looks like:
//
//	hi
//	[x]𝐡𝐢
//	[ ]𝒽𝒾
//
// The prompt only moves the cursor relative to where it is and clears lines;
// it never saves or restores the cursor position, and it never addresses
// absolute screen coordinates. It therefore works in the middle of a
// scrolling terminal, but it assumes the region does not wrap: every typed
// character and every preview must fit on one line.
//
// Key Bindings:
//
//   - Printable characters: Append to the input
//   - Backspace: Delete the last character
//   - Up/Down arrows: Move the selection (no wraparound)
//   - Enter: Confirm the selection
//   - Ctrl+C: Cancel and return ErrInterrupted
//
// Bindings can be changed with a custom KeyMap:
//
//	keyMap := fontprompt.NewDefaultKeyMap()
//	keyMap.Bind('\x10', fontprompt.ActionMoveUp)   // Ctrl+P
//	keyMap.Bind('\x0e', fontprompt.ActionMoveDown) // Ctrl+N
//
//	p, err := fontprompt.New(font.All(), fontprompt.WithKeyMap(keyMap))
//
// Context Support:
//
// Use RunWithContext for timeout or cancellation support. The prompt checks
// the context between key polls, so cancellation takes effect within one
// poll interval (50ms by default, see WithPollInterval):
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	result, err := p.RunWithContext(ctx)
//	if errors.Is(err, context.Canceled) {
//		return
//	}
//
// Error Handling:
//
//   - fontprompt.ErrInterrupted: User pressed Ctrl+C
//   - fontprompt.ErrTerminal: Raw mode, input or output failed; the session is aborted
//   - context.Canceled, context.DeadlineExceeded: The context ended the session
//
// Raw mode is restored before Run and RunWithContext return, whatever the
// outcome.
//
// Thread Safety:
//
// Prompt instances are not thread-safe. Each prompt should be used from a single
// goroutine. However, you can safely cancel a prompt from another goroutine using
// context cancellation.
//
// Resource Management:
//
// Always call Close() when done with a prompt to release the terminal. Close is
// safe to call multiple times.
package fontprompt
