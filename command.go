package main

import (
	"fmt"
	"io"
	"strings"

	"minidb/table"
)

// MetaCommandResult reports whether a leading-dot line was recognized.
type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandUnrecognized
	MetaCommandExit
)

// doMetaCommand handles a line starting with '.'. It never touches the
// table directly except for the read-only diagnostics (.btree,
// .session); .exit is reported back to the caller so main can flush
// and close before terminating.
func doMetaCommand(w io.Writer, line string, t *table.Table, session string) MetaCommandResult {
	switch strings.TrimSpace(line) {
	case ".exit":
		return MetaCommandExit
	case ".btree":
		printBTree(w, t)
		return MetaCommandSuccess
	case ".constants":
		printConstants(w)
		return MetaCommandSuccess
	case ".help":
		printHelp(w)
		return MetaCommandSuccess
	case ".session":
		fmt.Fprintf(w, "session: %s\n", session)
		return MetaCommandSuccess
	default:
		return MetaCommandUnrecognized
	}
}

func printBTree(w io.Writer, t *table.Table) {
	numCells, cells, err := t.DumpLeaf()
	if err != nil {
		fmt.Fprintf(w, "error dumping tree: %v\n", err)
		return
	}
	fmt.Fprintln(w, "Tree:")
	fmt.Fprintf(w, "leaf (size %d)\n", numCells)
	for _, c := range cells {
		fmt.Fprintf(w, "  - %d : %d\n", c.Index, c.Key)
	}
}

// printConstants prints the layout constants, supplementing spec.md
// with the `.constants` diagnostic original_source/ carries (see
// SPEC_FULL.md §9).
func printConstants(w io.Writer) {
	fmt.Fprintln(w, "Constants:")
	fmt.Fprintf(w, "ROW_SIZE: %d\n", table.RowSize)
	fmt.Fprintf(w, "COMMON_NODE_HEADER_SIZE: %d\n", table.CommonNodeHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_HEADER_SIZE: %d\n", table.LeafHeaderSize)
	fmt.Fprintf(w, "LEAF_NODE_CELL_SIZE: %d\n", table.LeafCellSize)
	fmt.Fprintf(w, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", table.LeafSpaceForCells)
	fmt.Fprintf(w, "LEAF_NODE_MAX_CELLS: %d\n", table.CellsPerLeaf)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Available commands:")
	fmt.Fprintln(w, ".help      - show this message")
	fmt.Fprintln(w, ".exit      - close the database and exit")
	fmt.Fprintln(w, ".btree     - dump the root leaf's cells")
	fmt.Fprintln(w, ".constants - print the storage layout constants")
	fmt.Fprintln(w, ".session   - print this connection's session token")
}
