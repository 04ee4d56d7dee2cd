package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tuplespaced/linda/internal/match"
)

func (a *app) cmdRd(args []string) int {
	flags := flag.NewFlagSet("rd", flag.ContinueOnError)
	once := flags.Bool("once", false, "fail immediately if nothing matches")
	timeoutSec := flags.Int("timeout", 0, "poll for at most N seconds before failing")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: linda rd <pattern> [--once] [--timeout N] [--json]")
		return 1
	}
	pattern := flags.Arg(0)
	mode := resolveMode(*once, *timeoutSec)

	data, err := a.sp.Rd(context.Background(), pattern, mode)
	if err != nil {
		return reportErr(*jsonOut, "rd", err)
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"ok": true, "data": string(data)})
	} else {
		os.Stdout.Write(data)
		fmt.Fprintf(os.Stderr, "(%s%s)\n", humanize.Bytes(uint64(len(data))), expirySuffix(a.sp.Dir(), pattern))
	}
	return 0
}

// expirySuffix peeks at the nearest remaining match for pattern to render
// a ", expires 3 minutes from now"-style hint alongside the payload size. It is
// cosmetic best-effort: the peek can race against the actual read and
// report metadata for a different tuple than the one returned, or find
// nothing at all, in which case it renders nothing.
func expirySuffix(dir, pattern string) string {
	candidates, err := match.Find(dir, pattern)
	if err != nil || len(candidates) == 0 {
		return ""
	}
	expiry := candidates[0].Parsed.Expiry
	if expiry == 0 {
		return ""
	}
	return ", expires " + humanize.Time(time.Unix(expiry, 0))
}
