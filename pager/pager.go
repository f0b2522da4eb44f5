// Package pager owns the backing file and caches page buffers for the
// storage engine. Every page is either present (loaded in memory) or
// absent; pages become present on first touch and stay present until
// the pager closes. There is no eviction, so the working set is bounded
// by TableMaxPages*PageSize.
package pager

import (
	"fmt"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/google/uuid"
)

const (
	// PageSize is the fixed size, in bytes, of every page.
	PageSize = 4096
	// TableMaxPages bounds how many page slots the pager will hand out.
	TableMaxPages = 100
)

// Page is a PageSize-byte buffer plus its slot number. Once a Page is
// installed in a Pager's slot its address is stable for the pager's
// lifetime.
type Page struct {
	Data    [PageSize]byte
	PageNum uint32
}

// Pager maps page indices to in-memory page buffers backed by a file.
// It demand-loads pages on first access and flushes every resident page
// on Close.
type Pager struct {
	file     *os.File
	fileSize int64
	NumPages uint32
	pages    [TableMaxPages]*Page

	locked  bool
	Session uuid.UUID
}

// Open opens path for read+write, creating it if absent, and validates
// that its size is a whole number of pages. A corrupt file size is a
// fatal condition: the caller should treat a non-nil error as reason to
// abort the process (spec: "database file has incomplete page").
func Open(path string) (*Pager, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("open database file: %w", err)
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("seek database file: %w", err)
	}
	if size%PageSize != 0 {
		f.Close()
		return nil, fmt.Errorf("database file has incomplete page (size %d is not a multiple of %d)", size, PageSize)
	}

	p := &Pager{
		file:     f,
		fileSize: size,
		NumPages: uint32(size / PageSize),
		Session:  uuid.New(),
	}

	if err := p.lock(); err != nil {
		f.Close()
		return nil, fmt.Errorf("lock database file: %w", err)
	}

	return p, nil
}

// lock takes a best-effort advisory exclusive lock on the backing file,
// guarding the single-writer invariant the engine assumes but does not
// otherwise enforce. A lock held by another process is an error; any
// other Flock failure only logs, since losing this guard is not a
// correctness issue for the on-disk format.
func (p *Pager) lock() error {
	err := syscall.Flock(int(p.file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err != nil {
		if err == syscall.EWOULDBLOCK {
			return fmt.Errorf("database file is locked by another process")
		}
		log.Printf("pager: advisory lock unavailable on this platform: %v", err)
		return nil
	}
	p.locked = true
	return nil
}

func (p *Pager) unlock() {
	if !p.locked {
		return
	}
	syscall.Flock(int(p.file.Fd()), syscall.LOCK_UN)
	p.locked = false
}

// GetPage returns the page buffer for index i, loading it from disk (or
// allocating a fresh zeroed buffer for a page beyond the persisted
// range) on first access. i must be less than TableMaxPages; any other
// value is a programmer error.
func (p *Pager) GetPage(i uint32) (*Page, error) {
	if i >= TableMaxPages {
		return nil, fmt.Errorf("GetPage: page %d out of bounds (max %d)", i, TableMaxPages)
	}

	if pg := p.pages[i]; pg != nil {
		return pg, nil
	}

	pg := &Page{PageNum: i}
	if i <= p.NumPages {
		if _, err := p.file.Seek(int64(i)*PageSize, io.SeekStart); err != nil {
			return nil, fmt.Errorf("GetPage: seek page %d: %w", i, err)
		}
		n, err := io.ReadFull(p.file, pg.Data[:])
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return nil, fmt.Errorf("GetPage: read page %d: %w", i, err)
		}
		_ = n // a short read simply leaves the tail zeroed
	}

	if i >= p.NumPages {
		p.NumPages = i + 1
	}

	p.pages[i] = pg
	return pg, nil
}

// Flush writes page i's full buffer back to the file. Flushing an empty
// (never-touched) slot is a benign no-op that only logs; Close itself
// skips empty slots.
func (p *Pager) Flush(i uint32) error {
	pg := p.pages[i]
	if pg == nil {
		log.Printf("pager: attempting to write empty page %d", i)
		return nil
	}
	if _, err := p.file.Seek(int64(i)*PageSize, io.SeekStart); err != nil {
		return fmt.Errorf("Flush: seek page %d: %w", i, err)
	}
	if _, err := p.file.Write(pg.Data[:]); err != nil {
		return fmt.Errorf("Flush: write page %d: %w", i, err)
	}
	return nil
}

// Close flushes every resident page, releases the advisory lock, and
// closes the file descriptor.
func (p *Pager) Close() error {
	for i := uint32(0); i < p.NumPages; i++ {
		if p.pages[i] == nil {
			continue
		}
		if err := p.Flush(i); err != nil {
			return err
		}
		p.pages[i] = nil
	}
	p.unlock()
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("close database file: %w", err)
	}
	return nil
}
