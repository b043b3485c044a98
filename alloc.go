package cfb

import "encoding/binary"

// sectorChain is an append-only chain-link table. Slot i holds the link
// for sector i: the index of the next sector in its chain, or a
// sentinel. Chains are never freed or reused within a pass.
type sectorChain struct {
	links []uint32
}

// newFATChain returns a chain seeded with the FAT marker for the
// table's own first on-disk sector.
func newFATChain() *sectorChain {
	return &sectorChain{links: []uint32{sectFAT}}
}

func newMiniChain() *sectorChain {
	return &sectorChain{}
}

// allocate reserves n new sectors chained head to tail and returns the
// index of the first. n == 0 reserves nothing and returns the
// end-of-chain sentinel.
func (c *sectorChain) allocate(n int) uint32 {
	if n <= 0 {
		return sectEndOfChain
	}
	first := uint32(len(c.links))
	for i := 1; i < n; i++ {
		c.links = append(c.links, first+uint32(i))
	}
	c.links = append(c.links, sectEndOfChain)
	return first
}

// finalize pads the table with free links until its length is a
// multiple of boundary, so it fills whole sectors on output.
func (c *sectorChain) finalize(boundary int) {
	for len(c.links)%boundary != 0 {
		c.links = append(c.links, sectFree)
	}
}

func (c *sectorChain) count() int { return len(c.links) }

// put serializes the table little-endian at the start of b.
func (c *sectorChain) put(b []byte) {
	for i, link := range c.links {
		binary.LittleEndian.PutUint32(b[4*i:], link)
	}
}
