package dump

const brailleBase = 0x2800

// BrailleRune maps the bits of b onto the dots of a Braille cell laid out as
// {1,2,3,4} down the left column and {5,6,7,8} down the right.  The Unicode
// block orders its dots {1,2,3,7,4,5,6,8}, so bit 3 moves up to the dot 7
// slot and bits 4-6 move down one place.
func BrailleRune(b byte) rune {
	bits := b&0x87 | (b&0x70)>>1 | (b&0x08)<<3
	return rune(brailleBase + int(bits))
}
