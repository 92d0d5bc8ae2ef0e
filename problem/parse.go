package problem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parse reads a whitespace-delimited integer stream:
//
//	side count r0 c0 r1 c1 r0 c0 r1 c1 ...
//
// The count token is recorded in Problem.Declared but not trusted; the
// rectangles are whatever quadruples follow it. A stream holding only the side
// length is a valid problem with no rectangles.
//
// Parse does not call Validate, so callers decide whether out-of-range
// rectangles are fatal.
//
// Errors: ErrEmptyInput, ErrBadToken (wrapped with the token position),
// ErrTrailingTokens, or the reader's error.
func Parse(r io.Reader) (Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var nums []int
	for pos := 0; sc.Scan(); pos++ {
		tok := sc.Text()
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Problem{}, fmt.Errorf("%w: %q at position %d", ErrBadToken, tok, pos)
		}
		nums = append(nums, n)
	}
	if err := sc.Err(); err != nil {
		return Problem{}, fmt.Errorf("problem: read input: %w", err)
	}
	if len(nums) == 0 {
		return Problem{}, ErrEmptyInput
	}

	p := Problem{Side: nums[0]}
	if len(nums) == 1 {
		return p, nil
	}
	p.Declared = nums[1]

	rest := nums[2:]
	if len(rest)%4 != 0 {
		return Problem{}, fmt.Errorf("%w: %d leftover", ErrTrailingTokens, len(rest)%4)
	}
	p.Rectangles = make([]Rectangle, 0, len(rest)/4)
	for i := 0; i < len(rest); i += 4 {
		p.Rectangles = append(p.Rectangles, Rect(rest[i], rest[i+1], rest[i+2], rest[i+3]))
	}
	return p, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (Problem, error) {
	return Parse(strings.NewReader(s))
}

// Format writes p as a single-line token stream accepted by Parse. The count
// token is the actual number of rectangles.
func Format(w io.Writer, p Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d", p.Side, len(p.Rectangles))
	for _, r := range p.Rectangles {
		fmt.Fprintf(bw, " %d %d %d %d", r.RowStart, r.ColStart, r.RowEnd, r.ColEnd)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// LoadTOML decodes a problem file of the form
//
//	side = 4
//	[[rect]]
//	row0 = 0
//	col0 = 0
//	row1 = 1
//	col1 = 1
//
// A missing count key defaults to the number of [[rect]] tables.
func LoadTOML(r io.Reader) (Problem, error) {
	var p Problem
	p.Declared = -1
	if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
		return Problem{}, fmt.Errorf("problem: decode toml: %w", err)
	}
	if p.Declared < 0 {
		p.Declared = len(p.Rectangles)
	}
	return p, nil
}

// EncodeTOML writes p in the format read by LoadTOML.
func EncodeTOML(w io.Writer, p Problem) error {
	p.Declared = len(p.Rectangles)
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("problem: encode toml: %w", err)
	}
	return nil
}
