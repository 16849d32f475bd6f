package deque

// Packed atomic anchors let the idempotent LIFO and Deque variants publish
// their whole mutable state (an index plus an ABA-guarding tag, or a
// head/size/tag triplet) with a single atomic.Uint64 operation instead of a
// multi-word CAS or a pointer swap with reclamation hazards.

const (
	lifoTagBits  = 32
	lifoTagMask  = (uint64(1) << lifoTagBits) - 1
	lifoTopShift = lifoTagBits
)

// packLIFOAnchor packs a (top, tag) pair into one word: top occupies the
// high 32 bits, tag the low 32.
func packLIFOAnchor(top int32, tag uint32) uint64 {
	return uint64(uint32(top))<<lifoTopShift | uint64(tag)&lifoTagMask
}

// unpackLIFOAnchor splits a packed anchor back into (top, tag).
func unpackLIFOAnchor(v uint64) (top int32, tag uint32) {
	top = int32(uint32(v >> lifoTopShift))
	tag = uint32(v & lifoTagMask)
	return
}

const (
	dequeTagBits  = 16
	dequeSizeBits = 24
	dequeHeadBits = 24

	dequeTagMask  = (uint64(1) << dequeTagBits) - 1
	dequeSizeMask = (uint64(1) << dequeSizeBits) - 1
	dequeHeadMask = (uint64(1) << dequeHeadBits) - 1

	dequeSizeShift = dequeTagBits
	dequeHeadShift = dequeTagBits + dequeSizeBits
)

// packDequeAnchor packs (head, size, tag) into one word: head in the top 24
// bits, size in the next 24, tag in the low 16.
func packDequeAnchor(head, size int32, tag uint32) uint64 {
	return uint64(uint32(head))&dequeHeadMask<<dequeHeadShift |
		uint64(uint32(size))&dequeSizeMask<<dequeSizeShift |
		uint64(tag)&dequeTagMask
}

// unpackDequeAnchor splits a packed anchor back into (head, size, tag).
func unpackDequeAnchor(v uint64) (head, size int32, tag uint32) {
	head = int32((v >> dequeHeadShift) & dequeHeadMask)
	size = int32((v >> dequeSizeShift) & dequeSizeMask)
	tag = uint32(v & dequeTagMask)
	return
}
