package table

import (
	"encoding/binary"
	"fmt"

	"minidb/pager"
)

// Node layout accessors expose typed views over a raw page buffer
// without copying. All offsets are bounds-checked against
// pager.PageSize; a cell index outside [0, CellsPerLeaf) is a
// programmer error and panics, per spec.md §4.2.

func checkCellIndex(i uint32) {
	if i >= CellsPerLeaf {
		panic(fmt.Sprintf("cell index %d out of bounds (max %d)", i, CellsPerLeaf))
	}
}

func NodeTypeOf(p *pager.Page) NodeType {
	return NodeType(p.Data[NodeTypeOffset])
}

func SetNodeType(p *pager.Page, t NodeType) {
	p.Data[NodeTypeOffset] = byte(t)
}

func IsRoot(p *pager.Page) bool {
	return p.Data[IsRootOffset] != 0
}

func SetIsRoot(p *pager.Page, isRoot bool) {
	if isRoot {
		p.Data[IsRootOffset] = 1
	} else {
		p.Data[IsRootOffset] = 0
	}
}

func Parent(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[ParentPointerOffset : ParentPointerOffset+ParentPointerSize])
}

func SetParent(p *pager.Page, parent uint32) {
	binary.LittleEndian.PutUint32(p.Data[ParentPointerOffset:ParentPointerOffset+ParentPointerSize], parent)
}

func LeafNumCells(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[LeafNumCellsOffset : LeafNumCellsOffset+LeafNumCellsSize])
}

func SetLeafNumCells(p *pager.Page, n uint32) {
	binary.LittleEndian.PutUint32(p.Data[LeafNumCellsOffset:LeafNumCellsOffset+LeafNumCellsSize], n)
}

// LeafCell returns the 295-byte cell slice at index i: key(4) | row(291).
func LeafCell(p *pager.Page, i uint32) []byte {
	checkCellIndex(i)
	off := LeafHeaderSize + i*LeafCellSize
	return p.Data[off : off+LeafCellSize]
}

// LeafKey returns the 4-byte key slice of the cell at index i.
func LeafKey(p *pager.Page, i uint32) []byte {
	cell := LeafCell(p, i)
	return cell[LeafKeyOffset : LeafKeyOffset+LeafKeySize]
}

// LeafValue returns the RowSize-byte value slice of the cell at index i.
func LeafValue(p *pager.Page, i uint32) []byte {
	cell := LeafCell(p, i)
	return cell[LeafValueOffset : LeafValueOffset+LeafValueSize]
}

// InitLeaf resets num_cells to zero and sets node_type = Leaf.
//
// The rewrite this engine is distilled from left node_type unset here,
// so a freshly-zeroed page silently read back as NodeInternal (the
// zero value). This is documented in spec.md §9 as likely a bug; this
// implementation sets the type explicitly instead of carrying the bug
// forward.
func InitLeaf(p *pager.Page) {
	SetNodeType(p, NodeLeaf)
	SetIsRoot(p, false)
	SetLeafNumCells(p, 0)
}
