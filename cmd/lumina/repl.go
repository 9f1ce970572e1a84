package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danswartzendruber/liner"

	"github.com/lumina-lang/lumina"
)

//
// Interactive fallback when lumina is started with no file argument.
// Grounded directly on the teacher's setupLiner/readLine pair
// (utils.go): a single liner.State gives history and line-editing.
// Lumina has no incremental top-level position once retroactive
// lifetimes are in play, so unlike a true line-at-a-time REPL this
// buffers lines until a blank one, then runs the whole buffer as one
// program -- closer to a scratch editor than basic-plus's classic
// immediate-mode loop
//

func runRepl(cfg lumina.Config) {

	if !stdinIsTerminal() {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lumina: %v\n", err)
			os.Exit(1)
		}
		runSource(string(src), cfg)
		return
	}

	l := liner.NewLiner()
	l.SetMultiLineMode(false)
	defer l.Close()

	fmt.Fprintln(os.Stderr, "lumina: interactive mode -- blank line runs the buffer, Ctrl-D quits")

	var buf strings.Builder

	for {
		line, eof := readLine(l, "lumina> ")
		if eof {
			break
		}

		if strings.TrimSpace(line) == "" {
			runSource(buf.String(), cfg)
			buf.Reset()
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")
	}

	if buf.Len() > 0 {
		runSource(buf.String(), cfg)
	}
}

// readLine mirrors the teacher's readLine (utils.go): a non-nil error
// from liner.Prompt on EOF is the normal way to signal "no more input"
func readLine(l *liner.State, prompt string) (string, bool) {

	s, err := l.Prompt(prompt)
	if err != nil {
		return "", true
	}

	l.AppendHistory(s)

	return s, false
}

func runSource(src string, cfg lumina.Config) {

	_, err := lumina.Run(src, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumina: %v\n", err)
	}
}
