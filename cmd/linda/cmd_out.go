package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tuplespaced/linda/pkg/space"
)

func (a *app) cmdOut(args []string) int {
	flags := flag.NewFlagSet("out", flag.ContinueOnError)
	ttlSec := flags.Int("ttl", 0, "time-to-live in seconds (0 = never expires)")
	seq := flags.Bool("seq", false, "allocate a FIFO sequence token")
	rep := flags.Bool("rep", false, "replacement mode (no random disambiguator)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: linda out <name> [--ttl N] [--seq] [--rep] [--json]")
		return 1
	}
	name := flags.Arg(0)

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linda: out: read stdin: %v\n", err)
		return 1
	}

	var opts []space.OutOption
	if *ttlSec > 0 {
		opts = append(opts, space.WithTTL(time.Duration(*ttlSec)*time.Second))
	}
	if *seq {
		opts = append(opts, space.WithSeq())
	}
	if *rep {
		opts = append(opts, space.WithRep())
	}

	if err := a.sp.Out(context.Background(), name, data, opts...); err != nil {
		return reportErr(*jsonOut, "out", err)
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"ok": true, "name": name, "bytes": len(data)})
	} else {
		fmt.Printf("out: %s (%s)\n", name, humanize.Bytes(uint64(len(data))))
	}
	return 0
}
