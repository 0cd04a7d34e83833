package bigend

// FindBytes searches buf[start:] for the byte sequence needle, at any byte
// alignment, and returns the absolute offset of the first match.
//
// Fails (returns -1, false) if start is out of range, needle is empty, or
// buf[start:] is shorter than needle.
func FindBytes(buf []byte, start int, needle []byte) (int, bool) {
	if start < 0 || start > len(buf) || len(needle) == 0 {
		return -1, false
	}
	last := len(buf) - len(needle)
	for i := start; i <= last; i++ {
		if matchAt(buf, i, needle) {
			return i, true
		}
	}
	return -1, false
}

// FindBytesReverse searches buf[:start+len(needle)] downward from start,
// returning the greatest offset <= start at which needle matches.
func FindBytesReverse(buf []byte, start int, needle []byte) (int, bool) {
	if len(needle) == 0 || start < 0 {
		return -1, false
	}
	hi := start
	if hi > len(buf)-len(needle) {
		hi = len(buf) - len(needle)
	}
	for i := hi; i >= 0; i-- {
		if matchAt(buf, i, needle) {
			return i, true
		}
	}
	return -1, false
}

func matchAt(buf []byte, off int, needle []byte) bool {
	for j, b := range needle {
		if buf[off+j] != b {
			return false
		}
	}
	return true
}

// FindU16 scans buf for a 2-byte-aligned big-endian u16 equal to needle,
// starting at offset start, and returns its offset.
func FindU16(buf []byte, start int, needle uint16) (int, bool) {
	start = alignUp(start, 2)
	for off := start; off+2 <= len(buf); off += 2 {
		if Load16(buf, off) == needle {
			return off, true
		}
	}
	return -1, false
}

// FindU16Reverse is the reverse-scanning counterpart to FindU16: it walks
// downward from start (aligned down to a 2-byte boundary) and returns the
// greatest matching offset <= start.
func FindU16Reverse(buf []byte, start int, needle uint16) (int, bool) {
	if start+2 > len(buf) {
		start = len(buf) - 2
	}
	start = alignDown(start, 2)
	for off := start; off >= 0; off -= 2 {
		if off+2 > len(buf) {
			continue
		}
		if Load16(buf, off) == needle {
			return off, true
		}
	}
	return -1, false
}

// FindU32 scans buf for a 4-byte-aligned big-endian u32 equal to needle,
// starting at offset start, and returns its offset.
func FindU32(buf []byte, start int, needle uint32) (int, bool) {
	start = alignUp(start, 4)
	for off := start; off+4 <= len(buf); off += 4 {
		if Load32(buf, off) == needle {
			return off, true
		}
	}
	return -1, false
}

// FindU32Reverse walks downward (4-byte aligned) from start, returning the
// greatest matching offset <= start.
func FindU32Reverse(buf []byte, start int, needle uint32) (int, bool) {
	if start+4 > len(buf) {
		start = len(buf) - 4
	}
	start = alignDown(start, 4)
	for off := start; off >= 0; off -= 4 {
		if off+4 > len(buf) {
			continue
		}
		if Load32(buf, off) == needle {
			return off, true
		}
	}
	return -1, false
}

func alignUp(off, n int) int {
	if off < 0 {
		return 0
	}
	rem := off % n
	if rem == 0 {
		return off
	}
	return off + (n - rem)
}

func alignDown(off, n int) int {
	if off < 0 {
		return 0
	}
	return off - (off % n)
}
