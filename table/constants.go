package table

import "minidb/pager"

// Row layout (spec.md §3): id, username, email, in that order,
// zero-padded, little-endian for the integer field.
const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = EmailOffset + EmailSize // 291
)

// Common node header layout: node_type(1) + is_root(1) + parent_page(4)
// + one unused byte, 7 bytes in all.
const (
	NodeTypeSize   = 1
	NodeTypeOffset = 0

	IsRootSize   = 1
	IsRootOffset = NodeTypeOffset + NodeTypeSize

	ParentPointerSize   = 4
	ParentPointerOffset = IsRootOffset + IsRootSize

	CommonNodeReservedSize = 1

	CommonNodeHeaderSize = NodeTypeSize + IsRootSize + ParentPointerSize + CommonNodeReservedSize // 7
)

// Leaf node header layout: +num_cells(4).
const (
	LeafNumCellsSize   = 4
	LeafNumCellsOffset = CommonNodeHeaderSize

	LeafHeaderSize = CommonNodeHeaderSize + LeafNumCellsSize // 11
)

// Leaf cell layout: key(4) + row(RowSize).
const (
	LeafKeySize   = 4
	LeafKeyOffset = 0

	LeafValueSize   = RowSize
	LeafValueOffset = LeafKeyOffset + LeafKeySize

	LeafCellSize = LeafKeySize + LeafValueSize // 295

	LeafSpaceForCells = pager.PageSize - LeafHeaderSize
	CellsPerLeaf      = LeafSpaceForCells / LeafCellSize // 13
)

// NodeType distinguishes leaf pages from the reserved-but-unimplemented
// interior pages. Interior is zero-valued on purpose: init_leaf must
// write NodeLeaf explicitly, or a freshly zeroed page would silently
// read back as an interior node (see InitLeaf).
type NodeType uint8

const (
	NodeInternal NodeType = iota
	NodeLeaf
)
