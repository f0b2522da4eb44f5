package pager

import (
	"os"
	"path/filepath"
	"testing"
)

func tempDBPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "pager_test.db")
}

func TestOpenEmptyFile(t *testing.T) {
	p, err := Open(tempDBPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if p.NumPages != 0 {
		t.Errorf("NumPages = %d; want 0", p.NumPages)
	}
}

func TestOpenRejectsIncompletePageFile(t *testing.T) {
	path := tempDBPath(t)
	if err := os.WriteFile(path, make([]byte, PageSize+10), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Error("expected error opening a file whose size is not a multiple of PageSize")
	}
}

func TestGetPageGrowsNumPages(t *testing.T) {
	p, err := Open(tempDBPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	pg, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage(0): %v", err)
	}
	if pg.PageNum != 0 {
		t.Errorf("PageNum = %d; want 0", pg.PageNum)
	}
	if p.NumPages != 1 {
		t.Errorf("NumPages = %d; want 1", p.NumPages)
	}
}

func TestGetPageRejectsOutOfBounds(t *testing.T) {
	p, err := Open(tempDBPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if _, err := p.GetPage(TableMaxPages); err == nil {
		t.Error("expected error for page index >= TableMaxPages")
	}
}

func TestFlushAndReopenPersistsData(t *testing.T) {
	path := tempDBPath(t)

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	pg, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage(0): %v", err)
	}
	pg.Data[0] = 0x42
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != PageSize {
		t.Errorf("file size = %d; want %d", info.Size(), PageSize)
	}

	p2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen Open: %v", err)
	}
	defer p2.Close()

	pg2, err := p2.GetPage(0)
	if err != nil {
		t.Fatalf("reopen GetPage(0): %v", err)
	}
	if pg2.Data[0] != 0x42 {
		t.Errorf("Data[0] = %#x; want 0x42", pg2.Data[0])
	}
}

func TestFlushEmptySlotIsBenign(t *testing.T) {
	p, err := Open(tempDBPath(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if err := p.Flush(5); err != nil {
		t.Errorf("Flush of an untouched slot should be benign, got: %v", err)
	}
}
