package cfb

import (
	"fmt"
	"io"
)

// EncodeBytes encodes entries into a complete compound file image.
//
// Entry 0 must be the root storage; every other entry must be reachable
// from it through exactly one parent. Streams shorter than
// MiniStreamCutoff are placed in the mini stream, everything else in
// 512-byte sectors. Each stream's Content is called exactly once, at
// the moment its region is written, and never if the pass fails before
// that point.
//
// EncodeBytes returns ErrValidation or ErrNotStorage for malformed
// input, ErrLimitExceeded when a limit is hit, ErrCapacity when the
// entry set does not fit a single-FAT container (about 64 KiB), and
// ErrContentSize when a content source produces a different number of
// bytes than its entry declares. On any error no buffer is returned.
func EncodeBytes(entries []Entry, opts ...WriteOption) ([]byte, error) {
	cfg := writeConfig{
		limits:    defaultLimits(),
		rootCLSID: DefaultRootCLSID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	if err := validateEntries(entries, cfg.limits); err != nil {
		return nil, err
	}
	e := newEncoder(entries, cfg)
	if err := e.buildTree(0); err != nil {
		return nil, err
	}
	if err := e.layout(); err != nil {
		return nil, err
	}
	return e.serialize()
}

// Encode writes the encoded container to w. The image is assembled in
// full before a single Write, so w never observes partial output.
func Encode(w io.Writer, entries []Entry, opts ...WriteOption) error {
	buf, err := EncodeBytes(entries, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// entryState is the per-pass bookkeeping for one entry. The caller's
// Entry values stay untouched.
type entryState struct {
	left, right, child uint32
	start              uint32
	mini               bool
}

type encoder struct {
	entries []Entry
	state   []entryState
	fat     *sectorChain
	minifat *sectorChain
	cfg     writeConfig
	buf     []byte

	firstDirSector     uint32
	firstMiniFATSector uint32
	miniDataBytes      uint32
}

func newEncoder(entries []Entry, cfg writeConfig) *encoder {
	e := &encoder{
		entries: entries,
		state:   make([]entryState, len(entries)),
		fat:     newFATChain(),
		minifat: newMiniChain(),
		cfg:     cfg,
	}
	for i := range e.state {
		e.state[i] = entryState{
			left:  noStream,
			right: noStream,
			child: noStream,
			start: sectEndOfChain,
		}
	}
	return e
}

func sectorsFor(n, size int) int {
	return (n + size - 1) / size
}

// layout runs the allocation phases in their required order: the
// directory region, big-path streams, mini-path streams, the
// serialized MiniFAT, and the mini data area, whose location and size
// become the root entry's own stream. Both tables are then padded to
// whole sectors.
func (e *encoder) layout() error {
	e.firstDirSector = e.fat.allocate(sectorsFor(len(e.entries)*dirEntryLen, sectorLen))

	for i := range e.entries {
		ent := &e.entries[i]
		if ent.Kind != KindStream {
			continue
		}
		if ent.Length < MiniStreamCutoff {
			e.state[i].mini = true
			continue
		}
		e.state[i].start = e.fat.allocate(sectorsFor(int(ent.Length), sectorLen))
	}
	for i := range e.entries {
		if e.state[i].mini {
			e.state[i].start = e.minifat.allocate(sectorsFor(int(e.entries[i].Length), miniSectorLen))
		}
	}

	e.firstMiniFATSector = e.fat.allocate(sectorsFor(4*e.minifat.count(), sectorLen))
	e.miniDataBytes = uint32(e.minifat.count() * miniSectorLen)
	e.state[0].start = e.fat.allocate(sectorsFor(int(e.miniDataBytes), sectorLen))

	e.fat.finalize(fatEntriesPerSector)
	if e.fat.count() > maxFATEntries {
		return fmt.Errorf("%w: %d sectors, single-FAT maximum is %d", ErrCapacity, e.fat.count(), maxFATEntries)
	}
	e.minifat.finalize(fatEntriesPerSector)
	return nil
}

// sector returns the buffer region starting at sector idx. Sector 0
// follows the header, so raw offset is (idx+1)*512. Allocations within
// a region are contiguous, which lets callers write across sectors.
func (e *encoder) sector(idx uint32) []byte {
	return e.buf[(1+int(idx))*sectorLen:]
}

// serialize sizes the output buffer and writes the header, the FAT,
// the directory records, every stream payload, and the MiniFAT at
// their fixed offsets.
func (e *encoder) serialize() ([]byte, error) {
	e.buf = make([]byte, (1+e.fat.count())*sectorLen)

	putFileHeader(e.buf[:headerLen], fileHeader{
		firstDirSector:     e.firstDirSector,
		firstMiniFATSector: e.firstMiniFATSector,
		miniFATSectorCount: uint32(e.minifat.count() / fatEntriesPerSector),
	})
	e.fat.put(e.sector(0))

	dir := e.sector(e.firstDirSector)
	for i := range e.entries {
		putDirEntry(dir[i*dirEntryLen:(i+1)*dirEntryLen], e.dirRecord(i))
	}

	for i := range e.entries {
		ent := &e.entries[i]
		if ent.Kind != KindStream || ent.Content == nil {
			continue
		}
		data, err := ent.Content()
		if err != nil {
			return nil, fmt.Errorf("cfb: stream %q content: %w", ent.Name, err)
		}
		if uint32(len(data)) != ent.Length {
			return nil, fmt.Errorf("%w: stream %q declares %d bytes, content produced %d", ErrContentSize, ent.Name, ent.Length, len(data))
		}
		if len(data) == 0 {
			continue
		}
		if e.state[i].mini {
			// Offset within the mini data area, which lives in the
			// root's big-sector chain.
			off := (1+int(e.state[0].start))*sectorLen + int(e.state[i].start)*miniSectorLen
			copy(e.buf[off:], data)
		} else {
			copy(e.sector(e.state[i].start), data)
		}
	}

	if e.minifat.count() > 0 {
		e.minifat.put(e.sector(e.firstMiniFATSector))
	}
	return e.buf, nil
}

// dirRecord assembles the directory record for entry i. The color byte
// is fixed rather than derived from tree shape: a black root and red
// everywhere else. Readers that enforce red-black balance on the
// directory tree may reject that.
func (e *encoder) dirRecord(i int) dirEntry {
	ent := &e.entries[i]
	st := e.state[i]
	d := dirEntry{
		name:        ent.Name,
		left:        st.left,
		right:       st.right,
		child:       st.child,
		startSector: st.start,
	}
	switch {
	case i == 0:
		// The root's stream is defined to be the mini data area.
		d.objectType = objTypeRoot
		d.color = colorBlack
		d.clsid = e.cfg.rootCLSID
		d.streamSize = e.miniDataBytes
	case ent.Kind == KindStorage:
		d.objectType = objTypeStorage
		d.color = colorRed
	default:
		d.objectType = objTypeStream
		d.color = colorRed
		d.streamSize = ent.Length
	}
	return d
}
