package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tuplespaced/linda/pkg/space"
)

// reportErr prints err appropriately for the subcommand and returns the
// exit code per the CLI's error taxonomy: 1 invalid-argument/io,
// 2 no-match, 3 timeout.
func reportErr(jsonOut bool, op string, err error) int {
	code := 1
	switch {
	case errors.Is(err, space.ErrNoMatch):
		code = 2
	case errors.Is(err, space.ErrTimeout):
		code = 3
	}

	if jsonOut {
		printJSON(map[string]interface{}{"ok": false, "error": err.Error()})
	} else {
		fmt.Fprintf(os.Stderr, "linda: %s: %v\n", op, err)
	}
	return code
}
