// Package dataset reads transaction datasets in the line-oriented text
// format: one transaction per line, items as single-space separated
// integers, no header.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fpeterek/strojove-uceni/internal/common"
	"github.com/fpeterek/strojove-uceni/internal/model"
)

// Parse errors.
var (
	ErrEmptyLine  = errors.New("empty line")
	ErrEmptyToken = errors.New("empty item")
)

// InputFormatError reports a malformed dataset line. It matches
// common.ErrInputFormat with errors.Is.
type InputFormatError struct {
	Err     error
	Content string
	Line    int
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Content, e.Err)
}

func (e *InputFormatError) Unwrap() []error {
	return []error{common.ErrInputFormat, e.Err}
}

// Parse reads every transaction from r. Line numbers in errors are 1-based.
// A trailing carriage return is ignored; duplicate items on a line collapse.
func Parse(r io.Reader) (model.Dataset[int], error) {
	br := bufio.NewReader(r)
	ds := model.Dataset[int]{}

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read line %d: %w", lineNo, err)
		}
		if line == "" && errors.Is(err, io.EOF) {
			break
		}

		txn, perr := parseLine(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), lineNo)
		if perr != nil {
			return nil, perr
		}
		ds = append(ds, txn)

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return ds, nil
}

func parseLine(line string, lineNo int) (model.Transaction[int], error) {
	if line == "" {
		return model.Transaction[int]{}, &InputFormatError{Line: lineNo, Content: line, Err: ErrEmptyLine}
	}

	tokens := strings.Split(line, " ")
	items := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			return model.Transaction[int]{}, &InputFormatError{
				Line:    lineNo,
				Content: line,
				Err:     fmt.Errorf("%w at position %d", ErrEmptyToken, i+1),
			}
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return model.Transaction[int]{}, &InputFormatError{
				Line:    lineNo,
				Content: line,
				Err:     fmt.Errorf("item %q at position %d is not an integer", tok, i+1),
			}
		}
		items = append(items, v)
	}

	return model.NewTransaction(items...), nil
}
