// Command fontprompt previews the typed text in several Unicode fonts and
// prints it in the one the user picks.
//
// Usage:
//
//	fontprompt [-fonts bold,script,...] [-theme name] [-no-color] [-poll 50ms]
//	fontprompt -list
//
// The prompt is drawn on stderr. When stdout is not a terminal, the picked
// text is also written there, so the command can be used in pipelines:
//
//	fontprompt -fonts fraktur,double-struck | pbcopy
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/nao1215/fontprompt"
	"github.com/nao1215/fontprompt/font"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fontprompt: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("fontprompt", flag.ContinueOnError)
	var (
		fontList = flags.String("fonts", "", "comma separated fonts to offer (default: all)")
		list     = flags.Bool("list", false, "print the available fonts and exit")
		theme    = flags.String("theme", fontprompt.ThemeDefault.Name, "color theme")
		noColor  = flags.Bool("no-color", false, "disable colored output")
		poll     = flags.Duration("poll", fontprompt.DefaultPollInterval, "how long to wait for a key between cancellation checks")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *list {
		return listFonts(stdout)
	}

	fonts, err := font.ParseList(*fontList)
	if err != nil {
		return err
	}
	options, err := promptOptions(*theme, *noColor, *poll)
	if err != nil {
		return err
	}

	p, err := fontprompt.New(fonts, options...)
	if err != nil {
		return err
	}
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := p.RunWithContext(ctx)
	switch {
	case errors.Is(err, fontprompt.ErrInterrupted), errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		return err
	}

	// The prompt already printed the result on the terminal
	if !isTerminal(os.Stdout) {
		fmt.Fprintln(stdout, result)
	}
	return nil
}

func promptOptions(theme string, noColor bool, poll time.Duration) ([]fontprompt.Option, error) {
	scheme, ok := fontprompt.ThemeByName(theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
	options := []fontprompt.Option{
		fontprompt.WithTheme(scheme),
		fontprompt.WithPollInterval(poll),
	}
	if noColor || os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stderr) {
		options = append(options, fontprompt.WithoutColor())
	}
	return options, nil
}

func listFonts(w io.Writer) error {
	for _, f := range font.All() {
		if _, err := fmt.Fprintf(w, "%-24s %s\n", f, font.ConvertString("Hello 123", f)); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
