// Package table implements the table/cursor layer described in
// spec.md §4.4: a table owns a pager and a root page, and a cursor
// denotes a logical (page, cell) position used to append rows (insert)
// and scan them in insertion order (select).
package table

import (
	"encoding/binary"
	"errors"
	"fmt"

	"minidb/pager"
)

// ErrTableFull is returned by ExecuteInsert once the sole leaf page's
// cell count has reached CellsPerLeaf. Node splitting is not
// implemented (spec.md §1 Non-goals); this is the authoritative
// capacity limit until it lands.
var ErrTableFull = errors.New("table is full")

// RootPageNum is always 0: this engine does not yet support splitting
// the root, so there is exactly one leaf page and it is always page 0.
const RootPageNum = 0

// Table owns a pager and identifies a root page.
type Table struct {
	Pager       *pager.Pager
	rootPageNum uint32
}

// Open constructs a pager for path and, if the file is new, initializes
// page 0 as an empty leaf root.
func Open(path string) (*Table, error) {
	p, err := pager.Open(path)
	if err != nil {
		return nil, err
	}

	t := &Table{Pager: p, rootPageNum: RootPageNum}

	if p.NumPages == 0 {
		root, err := p.GetPage(RootPageNum)
		if err != nil {
			return nil, fmt.Errorf("Open: initializing root page: %w", err)
		}
		InitLeaf(root)
		SetIsRoot(root, true)
	}

	return t, nil
}

// Close flushes every resident page and closes the backing file.
func (t *Table) Close() error {
	return t.Pager.Close()
}

// Cursor is a transient (page, cell) position. A cursor's lifetime must
// not outlive its owning table.
type Cursor struct {
	table      *Table
	pageNum    uint32
	cellNum    uint32
	endOfTable bool
}

// Start positions a cursor at the first cell of the root leaf.
func (t *Table) Start() (*Cursor, error) {
	root, err := t.Pager.GetPage(t.rootPageNum)
	if err != nil {
		return nil, err
	}
	numCells := LeafNumCells(root)
	return &Cursor{
		table:      t,
		pageNum:    t.rootPageNum,
		cellNum:    0,
		endOfTable: numCells == 0,
	}, nil
}

// End positions a cursor one past the last cell of the root leaf; this
// is the insertion point for an append.
func (t *Table) End() (*Cursor, error) {
	root, err := t.Pager.GetPage(t.rootPageNum)
	if err != nil {
		return nil, err
	}
	return &Cursor{
		table:      t,
		pageNum:    t.rootPageNum,
		cellNum:    LeafNumCells(root),
		endOfTable: true,
	}, nil
}

// Value returns the mutable value-region slice of the cell the cursor
// currently denotes.
func (c *Cursor) Value() ([]byte, error) {
	page, err := c.table.Pager.GetPage(c.pageNum)
	if err != nil {
		return nil, fmt.Errorf("Cursor.Value: %w", err)
	}
	return LeafValue(page, c.cellNum), nil
}

// Advance moves the cursor to the next cell of its current leaf and
// marks end-of-table once it has passed that leaf's last cell. It never
// moves to another page: there is only one leaf, and no sibling pointer
// to follow.
func (c *Cursor) Advance() error {
	page, err := c.table.Pager.GetPage(c.pageNum)
	if err != nil {
		return fmt.Errorf("Cursor.Advance: %w", err)
	}
	c.cellNum++
	if c.cellNum >= LeafNumCells(page) {
		c.endOfTable = true
	}
	return nil
}

// EndOfTable reports whether the cursor has moved past the last cell.
func (c *Cursor) EndOfTable() bool {
	return c.endOfTable
}

// ExecuteInsert appends row at the table's current end. It fails with
// ErrTableFull once the leaf's cell count equals CellsPerLeaf.
// Insertion order is physical cell order: keys are not sorted and no
// duplicate-key check is performed (spec.md §4.4).
func (t *Table) ExecuteInsert(row Row) error {
	root, err := t.Pager.GetPage(t.rootPageNum)
	if err != nil {
		return fmt.Errorf("ExecuteInsert: %w", err)
	}
	numCells := LeafNumCells(root)
	if numCells >= CellsPerLeaf {
		return ErrTableFull
	}

	cur, err := t.End()
	if err != nil {
		return fmt.Errorf("ExecuteInsert: %w", err)
	}

	cell := LeafCell(root, cur.cellNum)
	binary.LittleEndian.PutUint32(cell[LeafKeyOffset:LeafKeyOffset+LeafKeySize], row.ID)
	SerializeRow(row, cell[LeafValueOffset:LeafValueOffset+LeafValueSize])

	SetLeafNumCells(root, numCells+1)
	return nil
}

// Row yielded to callers of ExecuteSelect via the supplied fn, in
// insertion order, until the cursor reaches the end of the table.
func (t *Table) ExecuteSelect(fn func(Row) error) error {
	cur, err := t.Start()
	if err != nil {
		return fmt.Errorf("ExecuteSelect: %w", err)
	}
	for !cur.EndOfTable() {
		val, err := cur.Value()
		if err != nil {
			return fmt.Errorf("ExecuteSelect: %w", err)
		}
		if err := fn(DeserializeRow(val)); err != nil {
			return err
		}
		if err := cur.Advance(); err != nil {
			return fmt.Errorf("ExecuteSelect: %w", err)
		}
	}
	return nil
}

// LeafCellDump is one line of a `.btree` diagnostic dump: a cell's
// index and key.
type LeafCellDump struct {
	Index uint32
	Key   uint32
}

// DumpLeaf returns the root leaf's cell count and each cell's
// index/key, for the `.btree` meta-command (spec.md §4.5).
func (t *Table) DumpLeaf() (numCells uint32, cells []LeafCellDump, err error) {
	root, err := t.Pager.GetPage(t.rootPageNum)
	if err != nil {
		return 0, nil, fmt.Errorf("DumpLeaf: %w", err)
	}
	n := LeafNumCells(root)
	cells = make([]LeafCellDump, n)
	for i := uint32(0); i < n; i++ {
		key := binary.LittleEndian.Uint32(LeafKey(root, i))
		cells[i] = LeafCellDump{Index: i, Key: key}
	}
	return n, cells, nil
}
