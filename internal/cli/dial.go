// Package cli implements the interactive "dial" loop: a phone-screen
// rendition of a USSD session on stdin/stdout.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/afrisecure/ussd/pkg/ports"
)

// Dialer drives one interactive session against the engine.
type Dialer struct {
	Engine ports.SessionEngine

	In  io.Reader
	Out io.Writer

	// AutoDelay is the cosmetic pause on interstitial screens (the loan
	// "processing" step). Zero skips the pause.
	AutoDelay time.Duration
}

// Run dials into the given flow and loops until the session terminates.
func (d *Dialer) Run(ctx context.Context, flowID string) error {
	s, err := d.Engine.Start(ctx, flowID)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(d.In)
	for {
		screen, err := d.Engine.Render(s)
		if err != nil {
			return err
		}
		d.printScreen(screen)

		if strings.HasPrefix(screen, "END ") {
			return nil
		}

		// Resolve interstitials after letting the user see them.
		advanced, err := d.Engine.Advance(ctx, s)
		if err != nil {
			return err
		}
		if advanced.CurrentStateID != s.CurrentStateID {
			if d.AutoDelay > 0 {
				time.Sleep(d.AutoDelay)
			}
			s = advanced
			continue
		}

		fmt.Fprint(d.Out, "> ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		input := strings.TrimSpace(line)

		switch input {
		case "exit", "quit":
			s = d.Engine.End(ctx, s)
			continue
		case "reset":
			s, err = d.Engine.Reset(ctx, s)
			if err != nil {
				return err
			}
			continue
		}

		s, err = d.Engine.Submit(ctx, s, input)
		if err != nil {
			return err
		}
	}
}

// printScreen writes the screen text, green-on-black when stdout is a
// terminal, plain otherwise (pipes, tests).
func (d *Dialer) printScreen(screen string) {
	text := "\n" + screen + "\n"
	if f, ok := d.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		out := termenv.NewOutput(f)
		text = out.String(text).Foreground(out.Color("2")).String()
	}
	fmt.Fprintln(d.Out, text)
}
