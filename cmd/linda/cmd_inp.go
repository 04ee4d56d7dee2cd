package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

func (a *app) cmdInp(args []string) int {
	flags := flag.NewFlagSet("inp", flag.ContinueOnError)
	once := flags.Bool("once", false, "fail immediately if nothing matches")
	timeoutSec := flags.Int("timeout", 0, "poll for at most N seconds before failing")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: linda inp <pattern> [--once] [--timeout N] [--json]")
		return 1
	}
	pattern := flags.Arg(0)
	mode := resolveMode(*once, *timeoutSec)

	// Peeked before the consuming read so there is still a candidate file
	// left to inspect; the CLI-only hint may describe a different tuple
	// than the one Inp ultimately returns under concurrent access.
	suffix := expirySuffix(a.sp.Dir(), pattern)

	data, err := a.sp.Inp(context.Background(), pattern, mode)
	if err != nil {
		return reportErr(*jsonOut, "inp", err)
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"ok": true, "data": string(data)})
	} else {
		os.Stdout.Write(data)
		fmt.Fprintf(os.Stderr, "(%s%s)\n", humanize.Bytes(uint64(len(data))), suffix)
	}
	return 0
}
