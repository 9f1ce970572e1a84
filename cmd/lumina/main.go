package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/lumina-lang/lumina"
)

//
// The CLI wrapper, explicitly out of core scope but specified in
// outline by spec.md section 6: `lumina <file>`, missing file exits
// 1, any uncaught execution error exits 1, otherwise the truncated
// numeric last_return is the exit code.  Grounded on the teacher's
// own main() (basic.go): a small switch over argument count, a
// defer'd terminal cleanup, and a crash() path for bad usage -- here
// narrowed to Lumina's single-file, no-REPL-by-default contract, with
// the teacher's liner-backed REPL offered as a fallback when no file
// is given and stdin is a terminal
//

var (
	flagTrace  = flag.Bool("trace", false, "log each statement as it executes")
	flagDump   = flag.Bool("dump", false, "dump each statement's parsed form with -trace")
	flagStats  = flag.Bool("stats", false, "print run statistics to stderr on exit")
	flagConfig = flag.String("config", "", "path to a YAML config file")
)

func main() {

	flag.Parse()

	cfg := loadConfig()
	cfg.Trace = cfg.Trace || *flagTrace
	cfg.Dump = cfg.Dump || *flagDump

	args := flag.Args()

	switch len(args) {

	case 0:
		runRepl(cfg)

	case 1:
		runFile(args[0], cfg)

	default:
		fmt.Fprintln(os.Stderr, "usage: lumina [-trace] [-dump] [-stats] [-config path.yaml] [file]")
		os.Exit(1)
	}
}

func loadConfig() lumina.Config {

	if *flagConfig == "" {
		return lumina.DefaultConfig()
	}

	cfg, err := lumina.LoadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumina: %v\n", err)
		os.Exit(1)
	}

	return cfg
}

func runFile(path string, cfg lumina.Config) {

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lumina: %v\n", err)
		os.Exit(1)
	}

	result, stats, err := lumina.RunWithStats(string(src), cfg)

	if *flagStats {
		fmt.Fprint(os.Stderr, stats.Report())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "lumina: %v\n", err)
		os.Exit(1)
	}

	os.Exit(exitCodeFor(result))
}

func exitCodeFor(v lumina.Value) int {

	if !v.IsNumber() {
		return 0
	}

	return int(v.Number())
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
