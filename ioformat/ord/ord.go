package ord

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/gocrossmin/crossmin/ioformat"
)

// Read parses an ord stream into one name slice per layer, in ascending
// layer order, plus any "#"-prefixed comment lines encountered.
func Read(r io.Reader) (layers [][]string, comments []string, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}

	var body strings.Builder
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			comments = append(comments, strings.TrimSpace(strings.TrimPrefix(trimmed, "#")))
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}

	var s scanner.Scanner
	s.Init(strings.NewReader(body.String()))
	s.Mode = scanner.ScanIdents | scanner.ScanInts
	// A name is any run of characters other than whitespace and braces, so
	// names such as "0-1" stay a single token.
	s.IsIdentRune = func(ch rune, i int) bool {
		return ch >= 0 && ch != '{' && ch != '}' && !unicode.IsSpace(ch)
	}
	s.Filename = "ord"

	tok := s.Scan()
	for tok != scanner.EOF {
		if tok != scanner.Int && tok != scanner.Ident {
			return nil, nil, fmt.Errorf("%w: expected layer number, got %q", ioformat.ErrMalformedInput, s.TokenText())
		}
		layerNum, convErr := strconv.Atoi(s.TokenText())
		if convErr != nil {
			return nil, nil, fmt.Errorf("%w: bad layer number %q", ioformat.ErrMalformedInput, s.TokenText())
		}
		if layerNum != len(layers) {
			return nil, nil, fmt.Errorf("%w: expected layer %d in ascending order, got %d", ioformat.ErrMalformedInput, len(layers), layerNum)
		}

		if tok = s.Scan(); tok != '{' {
			return nil, nil, fmt.Errorf("%w: expected '{' after layer number %d", ioformat.ErrMalformedInput, layerNum)
		}

		var names []string
		for {
			tok = s.Scan()
			if tok == '}' {
				break
			}
			if tok == scanner.EOF {
				return nil, nil, fmt.Errorf("%w: unterminated layer %d block", ioformat.ErrMalformedInput, layerNum)
			}
			names = append(names, s.TokenText())
		}
		layers = append(layers, names)
		tok = s.Scan()
	}
	return layers, comments, nil
}

// Write emits comments as "#" lines followed by one "<layer> { ... }"
// block per layer, in ascending layer order, one name per node.
func Write(w io.Writer, names [][]string, comments []string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		if _, err := fmt.Fprintf(bw, "# %s\n", c); err != nil {
			return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
		}
	}
	for layerIdx, layerNames := range names {
		if _, err := fmt.Fprintf(bw, "%d { %s }\n", layerIdx, strings.Join(layerNames, " ")); err != nil {
			return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
		}
	}
	return bw.Flush()
}
