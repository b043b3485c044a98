package cfb

import "fmt"

// Builder assembles an entry list suitable for Encode. The zero index
// is always the root storage created by NewBuilder; Add methods return
// the index of the new entry for use as a parent.
type Builder struct {
	entries []Entry
}

func NewBuilder(rootName string) *Builder {
	return &Builder{entries: []Entry{{Name: rootName, Kind: KindStorage}}}
}

// Root returns the index of the root storage.
func (b *Builder) Root() int { return 0 }

func (b *Builder) AddStorage(parent int, name string) (int, error) {
	return b.add(parent, Entry{Name: name, Kind: KindStorage})
}

// AddStream adds a stream whose payload is data. The slice must not be
// mutated before the entries are encoded.
func (b *Builder) AddStream(parent int, name string, data []byte) (int, error) {
	return b.add(parent, Entry{
		Name:    name,
		Kind:    KindStream,
		Length:  uint32(len(data)),
		Content: func() ([]byte, error) { return data, nil },
	})
}

// AddStreamFunc adds a stream of the declared length whose payload is
// produced by fn at encode time.
func (b *Builder) AddStreamFunc(parent int, name string, length uint32, fn ContentFunc) (int, error) {
	return b.add(parent, Entry{Name: name, Kind: KindStream, Length: length, Content: fn})
}

func (b *Builder) add(parent int, e Entry) (int, error) {
	if parent < 0 || parent >= len(b.entries) {
		return 0, fmt.Errorf("%w: parent index %d out of range", ErrValidation, parent)
	}
	if b.entries[parent].Kind != KindStorage {
		return 0, fmt.Errorf("%w: parent %d (%q)", ErrNotStorage, parent, b.entries[parent].Name)
	}
	idx := len(b.entries)
	b.entries = append(b.entries, e)
	b.entries[parent].Children = append(b.entries[parent].Children, idx)
	return idx, nil
}

// Entries returns the assembled list for encoding.
func (b *Builder) Entries() []Entry { return b.entries }
