// Command regrep scans standard input line by line for the leftmost match
// of a pattern given as the sole command-line argument.
//
// Usage:
//
//	regrep <pattern>
//
// For each line with a match it prints the line, followed by a second line
// of the same length marking the match with dashes under the matched span
// and spaces elsewhere. Lines with no match produce no output.
package main

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/regrex"
)

const maxLineBuffer = 1024

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout))
}

func run(args []string, stdin *os.File, stdout *os.File) int {
	if len(args) != 2 {
		gologger.Error().Msgf("usage: regrep <pattern>")
		return 1
	}

	re, err := regrex.Compile(args[1])
	if err != nil {
		gologger.Error().Msgf("%s", err)
		var ce *regrex.CapacityError
		if errors.As(err, &ce) {
			return 2
		}
		var oe *regrex.OutOfMemoryError
		if errors.As(err, &oe) {
			return 2
		}
		return 1
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, maxLineBuffer), maxLineBuffer)

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\n")
		start, end, ok := re.Search(line)
		if !ok {
			continue
		}

		w.WriteString(line)
		w.WriteByte('\n')
		w.WriteString(underline(line, start, end))
		w.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		gologger.Error().Msgf("read input: %v", err)
		return 2
	}

	return 0
}

// underline builds a string the same length as line, with '-' under
// [start, end) and ' ' everywhere else.
func underline(line string, start, end int) string {
	b := make([]byte, len(line))
	for i := range b {
		if i >= start && i < end {
			b[i] = '-'
		} else {
			b[i] = ' '
		}
	}
	return string(b)
}
