package table

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Row is the fixed-schema record this store persists: id, username,
// email, in that order.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Validate enforces the length bounds spec.md §4.5 places on the
// front-end: the core trusts its caller to have already checked these,
// but serialization would silently truncate otherwise, so callers on
// the write path should call this first.
func (r Row) Validate() error {
	if len(r.Username) > UsernameSize {
		return fmt.Errorf("username %q exceeds maximum length %d", r.Username, UsernameSize)
	}
	if len(r.Email) > EmailSize {
		return fmt.Errorf("email %q exceeds maximum length %d", r.Email, EmailSize)
	}
	return nil
}

// SerializeRow writes r into dst at the fixed offsets: id at 0 (4
// bytes, little-endian), username at 4 (32 bytes, zero-padded), email
// at 36 (255 bytes, zero-padded). dst must be exactly RowSize bytes.
func SerializeRow(r Row, dst []byte) {
	if len(dst) != RowSize {
		panic(fmt.Sprintf("SerializeRow: dst length %d, expected %d", len(dst), RowSize))
	}
	for i := range dst {
		dst[i] = 0
	}
	binary.LittleEndian.PutUint32(dst[IDOffset:IDOffset+IDSize], r.ID)
	copy(dst[UsernameOffset:UsernameOffset+UsernameSize], r.Username)
	copy(dst[EmailOffset:EmailOffset+EmailSize], r.Email)
}

// DeserializeRow is the inverse of SerializeRow. Trailing zero bytes in
// the username/email fields are trimmed when rendered back to strings.
func DeserializeRow(src []byte) Row {
	if len(src) != RowSize {
		panic(fmt.Sprintf("DeserializeRow: src length %d, expected %d", len(src), RowSize))
	}
	id := binary.LittleEndian.Uint32(src[IDOffset : IDOffset+IDSize])
	username := strings.TrimRight(string(src[UsernameOffset:UsernameOffset+UsernameSize]), "\x00")
	email := strings.TrimRight(string(src[EmailOffset:EmailOffset+EmailSize]), "\x00")
	return Row{ID: id, Username: username, Email: email}
}
