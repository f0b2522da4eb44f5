package main

import (
	"errors"
	"strconv"
	"strings"

	"minidb/table"
)

// StatementType distinguishes the two supported statements.
type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

// Statement is a parsed query, ready for execution against a table.
type Statement struct {
	Type StatementType
	Row  table.Row
}

// Parsing errors distinguished per spec.md §6. Each maps to its own
// user-facing message in main.go; none of them are fatal.
var (
	ErrMissingFields         = errors.New("missing fields")
	ErrTooManyFields         = errors.New("too many fields")
	ErrFieldTooLong          = errors.New("field exceeded maximum length")
	ErrNegativeID            = errors.New("negative id")
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
)

// prepareStatement parses a line into a Statement. The source admits
// that "0" and non-numeric input both parse to zero (spec.md §9); this
// rewrite uses strconv.ParseInt so a non-numeric id is distinguished
// from an id of zero, and so a negative id gets its own dedicated
// error rather than silently wrapping to a huge uint32.
func prepareStatement(line string) (*Statement, error) {
	switch {
	case strings.HasPrefix(line, "insert"):
		return prepareInsert(line)
	case line == "select":
		return &Statement{Type: StatementSelect}, nil
	default:
		return nil, ErrUnrecognizedStatement
	}
}

func prepareInsert(line string) (*Statement, error) {
	fields := strings.Fields(line)
	// fields[0] is "insert"; exactly 3 more are required.
	args := fields[1:]
	if len(args) < 3 {
		return nil, ErrMissingFields
	}
	if len(args) > 3 {
		return nil, ErrTooManyFields
	}

	idText, username, email := args[0], args[1], args[2]

	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return nil, ErrMissingFields
	}
	if id < 0 {
		return nil, ErrNegativeID
	}
	if id > int64(^uint32(0)) {
		return nil, ErrFieldTooLong
	}

	if len(username) > table.UsernameSize || len(email) > table.EmailSize {
		return nil, ErrFieldTooLong
	}

	return &Statement{
		Type: StatementInsert,
		Row: table.Row{
			ID:       uint32(id),
			Username: username,
			Email:    email,
		},
	}, nil
}
