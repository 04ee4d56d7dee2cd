// Command linda is the CLI frontend for the filesystem-backed tuple
// space: one subcommand per pkg/space operation.
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("linda", version)
		return
	}

	args, verbose := extractVerbose(os.Args[2:])

	a, err := newApp(verbose)
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	switch os.Args[1] {
	case "out":
		os.Exit(a.cmdOut(args))
	case "rd":
		os.Exit(a.cmdRd(args))
	case "inp":
		os.Exit(a.cmdInp(args))
	case "ls":
		os.Exit(a.cmdLs(args))
	case "clear":
		os.Exit(a.cmdClear(args))
	default:
		fmt.Fprintf(os.Stderr, "linda: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'linda --help' for usage.")
		os.Exit(1)
	}
}

// extractVerbose pulls a bare "--verbose" flag out of args wherever it
// appears, since it applies before any subcommand's own flag.FlagSet is
// constructed.
func extractVerbose(args []string) ([]string, bool) {
	out := make([]string, 0, len(args))
	verbose := false
	for _, a := range args {
		if a == "--verbose" {
			verbose = true
			continue
		}
		out = append(out, a)
	}
	return out, verbose
}

func printUsage() {
	fmt.Print(`linda — a filesystem-backed Linda tuple space

Usage:
  linda [--verbose] <command> [flags]

Commands:
  out <name>       Publish a tuple; payload read from stdin
  rd <pattern>     Read a matching tuple without consuming it
  inp <pattern>    Read and consume a matching tuple
  ls [pattern]     List live tuples grouped by name
  clear            Remove every tuple (and sequence/lock state)

Environment:
  LINDA_DIR               Tuple space directory (default: /tmp/linda)
  LINDA_LOCK_TIMEOUT      Sequence-lock acquire timeout (test override)
  LINDA_POLL_INTERVAL     rd/inp poll interval (test override)

All commands support --json for machine-readable output.

Exit codes:
  0  success
  1  invalid argument / io error
  2  no match (--once)
  3  timeout
`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "linda: "+format+"\n", args...)
	os.Exit(1)
}
