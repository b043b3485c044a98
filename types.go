package cfb

const (
	headerLen     = 512
	sectorShift   = 9
	sectorLen     = 1 << sectorShift // 512-byte big sectors
	miniShift     = 6
	miniSectorLen = 1 << miniShift // 64-byte mini sectors
	dirEntryLen   = 128

	minorVersion  uint16 = 0x003E
	majorVersion  uint16 = 0x0003
	byteOrderMark uint16 = 0xFFFE

	headerDIFATSlots = 109

	fatEntriesPerSector = sectorLen / 4

	// maxFATEntries is the number of sector links a single FAT sector
	// holds. The header's FAT-sector count is fixed at 1 and only DIFAT
	// slot 0 is used, so a container cannot exceed this many sectors.
	maxFATEntries = fatEntriesPerSector
)

// Signature is the 8-byte compound file header signature.
var Signature = [8]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// MiniStreamCutoff is the size below which a stream's payload is stored
// in 64-byte mini sectors instead of 512-byte sectors.
const MiniStreamCutoff uint32 = 4096

// Sector chain sentinels.
const (
	sectFAT        uint32 = 0xFFFFFFFD // sector holds the FAT itself
	sectEndOfChain uint32 = 0xFFFFFFFE
	sectFree       uint32 = 0xFFFFFFFF
)

// Directory record constants.
const (
	noStream uint32 = 0xFFFFFFFF

	objTypeUnallocated byte = 0
	objTypeStorage     byte = 1
	objTypeStream      byte = 2
	objTypeRoot        byte = 5

	colorRed   byte = 0
	colorBlack byte = 1
)

// DefaultRootCLSID is the identifier written on the root directory
// record. Use WithRootCLSID to override it.
var DefaultRootCLSID = [16]byte{
	0xFB, 0x1C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// EntryKind distinguishes storages (containers) from streams.
type EntryKind uint8

const (
	KindStorage EntryKind = 1
	KindStream  EntryKind = 2
)

// ContentFunc produces a stream's payload. The encoder calls it at most
// once per encode pass, synchronously, at the moment the stream's
// region is written; it is never called if the pass fails earlier. The
// returned slice must be exactly the entry's declared Length.
type ContentFunc func() ([]byte, error)

// Entry is one node of the hierarchy handed to Encode. Entry 0 of the
// list must be the root storage. Entries are read-only for the duration
// of an encode pass; all mutable bookkeeping lives inside the encoder,
// so the same list may be encoded concurrently.
type Entry struct {
	Name string
	Kind EntryKind

	// Length is the declared payload size in bytes. Streams only.
	Length uint32

	// Content supplies the payload bytes. Required for streams with a
	// non-zero Length; must be nil for storages.
	Content ContentFunc

	// Children holds indices into the entry list of this storage's
	// direct children. Must be empty for streams.
	Children []int
}
