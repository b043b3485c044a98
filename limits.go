package cfb

type Limits struct {
	MaxEntries    int
	MaxStreamSize uint32 // declared length of a single stream
	MaxNameLength int    // UTF-16 code units, before field clamping
}

func defaultLimits() Limits {
	return Limits{
		MaxEntries:    1024,
		MaxStreamSize: 64 << 10, // a v3 single-FAT container tops out near 64 KiB
		MaxNameLength: 255,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxEntries == 0 {
		l.MaxEntries = d.MaxEntries
	}
	if l.MaxStreamSize == 0 {
		l.MaxStreamSize = d.MaxStreamSize
	}
	if l.MaxNameLength == 0 {
		l.MaxNameLength = d.MaxNameLength
	}
	return l
}
