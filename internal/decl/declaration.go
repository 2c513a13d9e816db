package decl

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// ErrNumberRange is returned for a call number that does not fit an int.
var ErrNumberRange = errors.New("numeric argument out of range")

// UnknownArgs marks an argument count too large to decode.
const UnknownArgs = -1

var declPattern = regexp.MustCompile(
	`SYSCALL_MACRO\((\w+),\s*(\w+),\s*(\d+),\s*(\d+),\s*(\d+)\)\s*` +
		`ENTER_PARAM_MACRO\(([^)]*)\)\s*` +
		`EXIT_PARAM_MACRO\(([^)]*)\)`,
)

// Declaration is one recognized SYSCALL_MACRO line.
type Declaration struct {
	// Upper names the generated event-type constants.
	Upper string
	// Lower names the generated probes and the output file.
	Lower string
	// Number is the syscall number. It only orders and names output files.
	Number int
	// EnterArgs and ExitArgs are the argument counts declared in SYSCALL_MACRO,
	// or UnknownArgs when the count does not fit an int.
	EnterArgs int
	ExitArgs  int
	// EnterRaw is the unparsed ENTER_PARAM_MACRO argument text.
	EnterRaw string
	// ExitRaw is the unparsed EXIT_PARAM_MACRO argument text. Nothing is generated from it.
	ExitRaw string
	// Line is the 1-based line of the declaration in its input.
	Line int
}

// EnterParams parses the entry parameter list.
func (d Declaration) EnterParams() []Param {
	return ParseParams(d.EnterRaw)
}

// String returns "<lower>(<number>)".
func (d Declaration) String() string {
	return fmt.Sprintf("%s(%d)", d.Lower, d.Number)
}

// LineError reports a line that has the declaration shape but cannot be decoded.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Scan lazily yields one Declaration per matching line of text.
// Lines without the declaration shape are skipped; lines with the shape but an
// undecodable call number yield a *LineError.
func Scan(text string) iter.Seq2[Declaration, error] {
	return func(yield func(Declaration, error) bool) {
		lineNo := 0

		for line := range strings.Lines(text) {
			lineNo++

			line = strings.TrimRight(line, "\r\n")

			m := declPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			d, err := fromMatch(m)
			if err != nil {
				if !yield(Declaration{}, &LineError{Line: lineNo, Text: line, Err: err}) {
					return
				}

				continue
			}

			d.Line = lineNo

			if !yield(d, nil) {
				return
			}
		}
	}
}

// Extract collects every declaration of text, in line order.
func Extract(text string) ([]Declaration, []*LineError) {
	var (
		decls []Declaration
		bad   []*LineError
	)

	for d, err := range Scan(text) {
		if err != nil {
			var lineErr *LineError
			if errors.As(err, &lineErr) {
				bad = append(bad, lineErr)
			}

			continue
		}

		decls = append(decls, d)
	}

	return decls, bad
}

func fromMatch(m []string) (Declaration, error) {
	number, err := strconv.Atoi(m[3])
	if err != nil {
		return Declaration{}, fmt.Errorf("%w: %q", ErrNumberRange, m[3])
	}

	return Declaration{
		Upper:     m[1],
		Lower:     m[2],
		Number:    number,
		EnterArgs: argCount(m[4]),
		ExitArgs:  argCount(m[5]),
		EnterRaw:  m[6],
		ExitRaw:   m[7],
	}, nil
}

func argCount(field string) int {
	n, err := strconv.Atoi(field)
	if err != nil {
		return UnknownArgs
	}

	return n
}
