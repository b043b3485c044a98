package cfb

import (
	"encoding/binary"
	"unicode/utf16"
)

// fileHeader carries the header fields that vary per file; the rest of
// the 512-byte header sector is fixed for version 3 containers.
type fileHeader struct {
	firstDirSector     uint32
	firstMiniFATSector uint32
	miniFATSectorCount uint32
}

// putFileHeader writes the 512-byte header at the start of b.
// b must be zeroed: reserved fields and the header CLSID are skipped.
func putFileHeader(b []byte, h fileHeader) {
	copy(b[0:8], Signature[:])
	binary.LittleEndian.PutUint16(b[24:26], minorVersion)
	binary.LittleEndian.PutUint16(b[26:28], majorVersion)
	binary.LittleEndian.PutUint16(b[28:30], byteOrderMark)
	binary.LittleEndian.PutUint16(b[30:32], sectorShift)
	binary.LittleEndian.PutUint16(b[32:34], miniShift)
	// bytes 34..43: reserved, plus the directory-sector count v4 uses
	binary.LittleEndian.PutUint32(b[44:48], 1) // FAT sector count
	binary.LittleEndian.PutUint32(b[48:52], h.firstDirSector)
	// bytes 52..55: transaction signature
	binary.LittleEndian.PutUint32(b[56:60], MiniStreamCutoff)
	binary.LittleEndian.PutUint32(b[60:64], h.firstMiniFATSector)
	binary.LittleEndian.PutUint32(b[64:68], h.miniFATSectorCount)
	binary.LittleEndian.PutUint32(b[68:72], sectEndOfChain) // first DIFAT sector: none
	// bytes 72..75: DIFAT sector count
	binary.LittleEndian.PutUint32(b[76:80], 0) // DIFAT slot 0: the FAT's own sector
	for i := 1; i < headerDIFATSlots; i++ {
		binary.LittleEndian.PutUint32(b[76+4*i:], sectFree)
	}
}

// dirEntry is the logical form of one 128-byte directory record.
type dirEntry struct {
	name               string
	objectType         byte
	color              byte
	left, right, child uint32
	clsid              [16]byte
	startSector        uint32
	streamSize         uint32
}

// putDirEntry writes one directory record at the start of b.
func putDirEntry(b []byte, d dirEntry) {
	nameLen := putDirName(b[0:64], d.name)
	binary.LittleEndian.PutUint16(b[64:66], nameLen)
	b[66] = d.objectType
	b[67] = d.color
	binary.LittleEndian.PutUint32(b[68:72], d.left)
	binary.LittleEndian.PutUint32(b[72:76], d.right)
	binary.LittleEndian.PutUint32(b[76:80], d.child)
	copy(b[80:96], d.clsid[:])
	// bytes 96..115: state flags and timestamps
	binary.LittleEndian.PutUint32(b[116:120], d.startSector)
	binary.LittleEndian.PutUint32(b[120:124], d.streamSize)
}

// putDirName stores name as UTF-16LE in the 64-byte name field,
// clamping to 31 code units plus the NUL terminator, and returns the
// stored length in bytes including the terminator, at most 64.
func putDirName(b []byte, name string) uint16 {
	units := utf16.Encode([]rune(name))
	if len(units) > 31 {
		units = units[:31]
	}
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	return uint16((len(units) + 1) * 2)
}
