package repl

import (
	"fmt"
	"strconv"
	"strings"

	"warehouse-manager/internal/core"
)

// tokenize splits a raw input line into whitespace-delimited tokens. The
// first token is the command name, the rest are positional arguments. A
// blank line yields no tokens.
func tokenize(line string) []string {
	return strings.Fields(line)
}

// arg returns the i-th positional argument, or "" when absent. Missing
// arguments behave exactly like empty-string arguments, so `show` with no
// item resolves to a lookup of "" and reports the product as not found.
func arg(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return args[i]
}

// parseInt accepts a token only if the whole of it is a base-10 integer.
// A sign is allowed; leftover characters are not.
func parseInt(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidNumber, token)
	}
	return n, nil
}
