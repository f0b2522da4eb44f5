package table

import (
	"path/filepath"
	"testing"

	"minidb/pager"
)

func newTestPage(t *testing.T) *pager.Page {
	p, err := pager.Open(filepath.Join(t.TempDir(), "node_test.db"))
	if err != nil {
		t.Fatalf("pager.Open: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	pg, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage: %v", err)
	}
	return pg
}

func TestInitLeafSetsNodeType(t *testing.T) {
	pg := newTestPage(t)
	InitLeaf(pg)

	if got := NodeTypeOf(pg); got != NodeLeaf {
		t.Errorf("NodeTypeOf = %v; want NodeLeaf", got)
	}
	if LeafNumCells(pg) != 0 {
		t.Errorf("LeafNumCells = %d; want 0", LeafNumCells(pg))
	}
}

func TestIsRootRoundTrip(t *testing.T) {
	pg := newTestPage(t)
	InitLeaf(pg)

	if IsRoot(pg) {
		t.Error("freshly initialized leaf should not be root")
	}
	SetIsRoot(pg, true)
	if !IsRoot(pg) {
		t.Error("SetIsRoot(true) did not stick")
	}
}

func TestParentRoundTrip(t *testing.T) {
	pg := newTestPage(t)
	SetParent(pg, 7)
	if got := Parent(pg); got != 7 {
		t.Errorf("Parent() = %d; want 7", got)
	}
}

func TestLeafCellLayout(t *testing.T) {
	pg := newTestPage(t)
	InitLeaf(pg)
	SetLeafNumCells(pg, 1)

	key := LeafKey(pg, 0)
	if len(key) != LeafKeySize {
		t.Errorf("len(LeafKey) = %d; want %d", len(key), LeafKeySize)
	}
	val := LeafValue(pg, 0)
	if len(val) != LeafValueSize {
		t.Errorf("len(LeafValue) = %d; want %d", len(val), LeafValueSize)
	}

	key[0] = 0xAB
	val[0] = 0xCD
	cell := LeafCell(pg, 0)
	if cell[0] != 0xAB || cell[LeafValueOffset] != 0xCD {
		t.Errorf("LeafCell does not alias LeafKey/LeafValue: %v", cell[:8])
	}
}

func TestCellsPerLeafMatchesSpecBudget(t *testing.T) {
	if CellsPerLeaf != 13 {
		t.Errorf("CellsPerLeaf = %d; want 13", CellsPerLeaf)
	}
	if RowSize != 291 {
		t.Errorf("RowSize = %d; want 291", RowSize)
	}
	if LeafCellSize != 295 {
		t.Errorf("LeafCellSize = %d; want 295", LeafCellSize)
	}
	if LeafHeaderSize != 11 {
		t.Errorf("LeafHeaderSize = %d; want 11", LeafHeaderSize)
	}
}

func TestLeafCellPanicsOutOfBounds(t *testing.T) {
	pg := newTestPage(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-bounds cell index")
		}
	}()
	LeafCell(pg, CellsPerLeaf)
}
