// Command minidb is the line-oriented REPL front-end described in
// spec.md §6. It is an external collaborator of the storage engine in
// package table: it owns prompting, line reading, meta-command
// handling, and insert/select statement parsing, and talks to the core
// through table.Open/Close/ExecuteInsert/ExecuteSelect/DumpLeaf, plus
// read-only access to the pager's Session and the table layout
// constants for the .session and .constants diagnostics.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"minidb/config"
	"minidb/table"
)

func main() {
	configPath := flag.String("config", os.Getenv("MINIDB_CONFIG"), "path to an optional YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	path := flag.Arg(0)
	if path == "" {
		path = cfg.DefaultDBPath
	}
	if path == "" {
		fmt.Println("Must supply a database filename.")
		os.Exit(1)
	}

	t, err := table.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	exitCode := runREPL(os.Stdin, os.Stdout, t, cfg)
	os.Exit(exitCode)
}

// runREPL drives the prompt/read/prepare/execute loop until .exit or a
// fatal I/O error, and returns the process exit code the caller should
// use. It is written against io.Reader/io.Writer (rather than *os.File)
// so tests can drive it with an in-memory buffer.
func runREPL(in io.Reader, out io.Writer, t *table.Table, cfg config.Config) int {
	reader := bufio.NewReader(in)
	session := t.Pager.Session.String()

	for {
		printPrompt(out, cfg.Prompt)

		line, err := readInput(reader)
		if err != nil {
			fmt.Fprintln(out, "Error reading input.")
			t.Close()
			return 1
		}
		if line == "" {
			continue
		}

		if line[0] == '.' {
			switch doMetaCommand(out, line, t, session) {
			case MetaCommandExit:
				if err := t.Close(); err != nil {
					fmt.Fprintf(out, "%v\n", err)
					return 1
				}
				return 0
			case MetaCommandSuccess:
				continue
			case MetaCommandUnrecognized:
				fmt.Fprintf(out, "Unkown command: %s\n", line)
				continue
			}
		}

		stmt, err := prepareStatement(line)
		if err != nil {
			fmt.Fprint(out, statementParseMessage(line, err))
			continue
		}

		if err := executeStatement(out, t, stmt); err != nil {
			fmt.Fprintf(out, "%v\n", err)
			t.Close()
			return 1
		}
	}
}

// statementParseMessage renders the user-facing message for a
// prepareStatement error, using the exact wording spec.md §6 requires.
func statementParseMessage(line string, err error) string {
	switch err {
	case ErrMissingFields:
		return fmt.Sprintf("Failed to parse arguments for query %s.\n", line)
	case ErrFieldTooLong:
		return "Failed to parse query. The fields exceeded maximum length.\n"
	case ErrTooManyFields:
		return "Failed to parse query. Too many fields were provided.\n"
	case ErrNegativeID:
		return "Failed to parse the query. It contains a negative id.\n"
	default:
		return fmt.Sprintf("Unkown query: %s.\n", line)
	}
}

func executeStatement(out io.Writer, t *table.Table, stmt *Statement) error {
	switch stmt.Type {
	case StatementInsert:
		if err := t.ExecuteInsert(stmt.Row); err != nil {
			if err == table.ErrTableFull {
				fmt.Fprintln(out, "Cannot insert new data. Table is full.")
				return nil
			}
			return err
		}
		fmt.Fprintln(out, "Executed.")
	case StatementSelect:
		return t.ExecuteSelect(func(r table.Row) error {
			fmt.Fprintf(out, "{id:%d, email:%s, user:%s }\n", r.ID, r.Email, r.Username)
			return nil
		})
	}
	return nil
}
