package font

// glyphs8x16 holds 16 row bytes per glyph, MSB = leftmost pixel, for codes
// 32..129. Codes 32..126 are the IBM VGA ROM font.
var glyphs8x16 = [numGlyphs][16]byte{
	{ // 0x20 ' '
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x21 '!'
		0x00, 0x00, 0x18, 0x3C, 0x3C, 0x3C, 0x18, 0x18,
		0x18, 0x00, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x22 '"'
		0x00, 0x66, 0x66, 0x66, 0x24, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x23 '#'
		0x00, 0x00, 0x00, 0x6C, 0x6C, 0xFE, 0x6C, 0x6C,
		0x6C, 0xFE, 0x6C, 0x6C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x24 '$'
		0x18, 0x18, 0x7C, 0xC6, 0xC2, 0xC0, 0x7C, 0x06,
		0x06, 0x86, 0xC6, 0x7C, 0x18, 0x18, 0x00, 0x00,
	},
	{ // 0x25 '%'
		0x00, 0x00, 0x00, 0x00, 0xC2, 0xC6, 0x0C, 0x18,
		0x30, 0x60, 0xC6, 0x86, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x26 '&'
		0x00, 0x00, 0x38, 0x6C, 0x6C, 0x38, 0x76, 0xDC,
		0xCC, 0xCC, 0xCC, 0x76, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x27 "'"
		0x00, 0x30, 0x30, 0x30, 0x60, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x28 '('
		0x00, 0x00, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x30,
		0x30, 0x30, 0x18, 0x0C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x29 ')'
		0x00, 0x00, 0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x0C,
		0x0C, 0x0C, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x2A '*'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x66, 0x3C, 0xFF,
		0x3C, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x2B '+'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x7E,
		0x18, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x2C ','
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x18, 0x18, 0x18, 0x30, 0x00, 0x00, 0x00,
	},
	{ // 0x2D '-'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFE,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x2E '.'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x2F '/'
		0x00, 0x00, 0x00, 0x00, 0x02, 0x06, 0x0C, 0x18,
		0x30, 0x60, 0xC0, 0x80, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x30 '0'
		0x00, 0x00, 0x3C, 0x66, 0xC3, 0xC3, 0xDB, 0xDB,
		0xC3, 0xC3, 0x66, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x31 '1'
		0x00, 0x00, 0x18, 0x38, 0x78, 0x18, 0x18, 0x18,
		0x18, 0x18, 0x18, 0x7E, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x32 '2'
		0x00, 0x00, 0x7C, 0xC6, 0x06, 0x0C, 0x18, 0x30,
		0x60, 0xC0, 0xC6, 0xFE, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x33 '3'
		0x00, 0x00, 0x7C, 0xC6, 0x06, 0x06, 0x3C, 0x06,
		0x06, 0x06, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x34 '4'
		0x00, 0x00, 0x0C, 0x1C, 0x3C, 0x6C, 0xCC, 0xFE,
		0x0C, 0x0C, 0x0C, 0x1E, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x35 '5'
		0x00, 0x00, 0xFE, 0xC0, 0xC0, 0xC0, 0xFC, 0x06,
		0x06, 0x06, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x36 '6'
		0x00, 0x00, 0x38, 0x60, 0xC0, 0xC0, 0xFC, 0xC6,
		0xC6, 0xC6, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x37 '7'
		0x00, 0x00, 0xFE, 0xC6, 0x06, 0x06, 0x0C, 0x18,
		0x30, 0x30, 0x30, 0x30, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x38 '8'
		0x00, 0x00, 0x7C, 0xC6, 0xC6, 0xC6, 0x7C, 0xC6,
		0xC6, 0xC6, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x39 '9'
		0x00, 0x00, 0x7C, 0xC6, 0xC6, 0xC6, 0x7E, 0x06,
		0x06, 0x06, 0x0C, 0x78, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x3A ':'
		0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00, 0x00,
		0x00, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x3B ';'
		0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00, 0x00,
		0x00, 0x18, 0x18, 0x30, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x3C '<'
		0x00, 0x00, 0x00, 0x06, 0x0C, 0x18, 0x30, 0x60,
		0x30, 0x18, 0x0C, 0x06, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x3D '='
		0x00, 0x00, 0x00, 0x00, 0x00, 0x7E, 0x00, 0x00,
		0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x3E '>'
		0x00, 0x00, 0x00, 0x60, 0x30, 0x18, 0x0C, 0x06,
		0x0C, 0x18, 0x30, 0x60, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x3F '?'
		0x00, 0x00, 0x7C, 0xC6, 0xC6, 0x0C, 0x18, 0x18,
		0x18, 0x00, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x40 '@'
		0x00, 0x00, 0x00, 0x7C, 0xC6, 0xC6, 0xDE, 0xDE,
		0xDE, 0xDC, 0xC0, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x41 'A'
		0x00, 0x00, 0x10, 0x38, 0x6C, 0xC6, 0xC6, 0xFE,
		0xC6, 0xC6, 0xC6, 0xC6, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x42 'B'
		0x00, 0x00, 0xFC, 0x66, 0x66, 0x66, 0x7C, 0x66,
		0x66, 0x66, 0x66, 0xFC, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x43 'C'
		0x00, 0x00, 0x3C, 0x66, 0xC2, 0xC0, 0xC0, 0xC0,
		0xC0, 0xC2, 0x66, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x44 'D'
		0x00, 0x00, 0xF8, 0x6C, 0x66, 0x66, 0x66, 0x66,
		0x66, 0x66, 0x6C, 0xF8, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x45 'E'
		0x00, 0x00, 0xFE, 0x66, 0x62, 0x68, 0x78, 0x68,
		0x60, 0x62, 0x66, 0xFE, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x46 'F'
		0x00, 0x00, 0xFE, 0x66, 0x62, 0x68, 0x78, 0x68,
		0x60, 0x60, 0x60, 0xF0, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x47 'G'
		0x00, 0x00, 0x3C, 0x66, 0xC2, 0xC0, 0xC0, 0xDE,
		0xC6, 0xC6, 0x66, 0x3A, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x48 'H'
		0x00, 0x00, 0xC6, 0xC6, 0xC6, 0xC6, 0xFE, 0xC6,
		0xC6, 0xC6, 0xC6, 0xC6, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x49 'I'
		0x00, 0x00, 0x3C, 0x18, 0x18, 0x18, 0x18, 0x18,
		0x18, 0x18, 0x18, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x4A 'J'
		0x00, 0x00, 0x1E, 0x0C, 0x0C, 0x0C, 0x0C, 0x0C,
		0xCC, 0xCC, 0xCC, 0x78, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x4B 'K'
		0x00, 0x00, 0xE6, 0x66, 0x66, 0x6C, 0x78, 0x78,
		0x6C, 0x66, 0x66, 0xE6, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x4C 'L'
		0x00, 0x00, 0xF0, 0x60, 0x60, 0x60, 0x60, 0x60,
		0x60, 0x62, 0x66, 0xFE, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x4D 'M'
		0x00, 0x00, 0xC3, 0xE7, 0xFF, 0xFF, 0xDB, 0xC3,
		0xC3, 0xC3, 0xC3, 0xC3, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x4E 'N'
		0x00, 0x00, 0xC6, 0xE6, 0xF6, 0xFE, 0xDE, 0xCE,
		0xC6, 0xC6, 0xC6, 0xC6, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x4F 'O'
		0x00, 0x00, 0x7C, 0xC6, 0xC6, 0xC6, 0xC6, 0xC6,
		0xC6, 0xC6, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x50 'P'
		0x00, 0x00, 0xFC, 0x66, 0x66, 0x66, 0x7C, 0x60,
		0x60, 0x60, 0x60, 0xF0, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x51 'Q'
		0x00, 0x00, 0x7C, 0xC6, 0xC6, 0xC6, 0xC6, 0xC6,
		0xC6, 0xD6, 0xDE, 0x7C, 0x0C, 0x0E, 0x00, 0x00,
	},
	{ // 0x52 'R'
		0x00, 0x00, 0xFC, 0x66, 0x66, 0x66, 0x7C, 0x6C,
		0x66, 0x66, 0x66, 0xE6, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x53 'S'
		0x00, 0x00, 0x7C, 0xC6, 0xC6, 0x60, 0x38, 0x0C,
		0x06, 0xC6, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x54 'T'
		0x00, 0x00, 0xFF, 0xDB, 0x99, 0x18, 0x18, 0x18,
		0x18, 0x18, 0x18, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x55 'U'
		0x00, 0x00, 0xC6, 0xC6, 0xC6, 0xC6, 0xC6, 0xC6,
		0xC6, 0xC6, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x56 'V'
		0x00, 0x00, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3,
		0xC3, 0x66, 0x3C, 0x18, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x57 'W'
		0x00, 0x00, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xDB,
		0xDB, 0xFF, 0x66, 0x66, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x58 'X'
		0x00, 0x00, 0xC3, 0xC3, 0x66, 0x3C, 0x18, 0x18,
		0x3C, 0x66, 0xC3, 0xC3, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x59 'Y'
		0x00, 0x00, 0xC3, 0xC3, 0xC3, 0x66, 0x3C, 0x18,
		0x18, 0x18, 0x18, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x5A 'Z'
		0x00, 0x00, 0xFF, 0xC3, 0x86, 0x0C, 0x18, 0x30,
		0x60, 0xC1, 0xC3, 0xFF, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x5B '['
		0x00, 0x00, 0x3C, 0x30, 0x30, 0x30, 0x30, 0x30,
		0x30, 0x30, 0x30, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x5C '\\'
		0x00, 0x00, 0x00, 0x80, 0xC0, 0xE0, 0x70, 0x38,
		0x1C, 0x0E, 0x06, 0x02, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x5D ']'
		0x00, 0x00, 0x3C, 0x0C, 0x0C, 0x0C, 0x0C, 0x0C,
		0x0C, 0x0C, 0x0C, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x5E '^'
		0x10, 0x38, 0x6C, 0xC6, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x5F '_'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x00, 0x00,
	},
	{ // 0x60 '`'
		0x30, 0x30, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x61 'a'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x78, 0x0C, 0x7C,
		0xCC, 0xCC, 0xCC, 0x76, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x62 'b'
		0x00, 0x00, 0xE0, 0x60, 0x60, 0x78, 0x6C, 0x66,
		0x66, 0x66, 0x66, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x63 'c'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x7C, 0xC6, 0xC0,
		0xC0, 0xC0, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x64 'd'
		0x00, 0x00, 0x1C, 0x0C, 0x0C, 0x3C, 0x6C, 0xCC,
		0xCC, 0xCC, 0xCC, 0x76, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x65 'e'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x7C, 0xC6, 0xFE,
		0xC0, 0xC0, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x66 'f'
		0x00, 0x00, 0x38, 0x6C, 0x64, 0x60, 0xF0, 0x60,
		0x60, 0x60, 0x60, 0xF0, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x67 'g'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x76, 0xCC, 0xCC,
		0xCC, 0xCC, 0xCC, 0x7C, 0x0C, 0xCC, 0x78, 0x00,
	},
	{ // 0x68 'h'
		0x00, 0x00, 0xE0, 0x60, 0x60, 0x6C, 0x76, 0x66,
		0x66, 0x66, 0x66, 0xE6, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x69 'i'
		0x00, 0x00, 0x18, 0x18, 0x00, 0x38, 0x18, 0x18,
		0x18, 0x18, 0x18, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x6A 'j'
		0x00, 0x00, 0x06, 0x06, 0x00, 0x0E, 0x06, 0x06,
		0x06, 0x06, 0x06, 0x06, 0x66, 0x66, 0x3C, 0x00,
	},
	{ // 0x6B 'k'
		0x00, 0x00, 0xE0, 0x60, 0x60, 0x66, 0x6C, 0x78,
		0x78, 0x6C, 0x66, 0xE6, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x6C 'l'
		0x00, 0x00, 0x38, 0x18, 0x18, 0x18, 0x18, 0x18,
		0x18, 0x18, 0x18, 0x3C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x6D 'm'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xE6, 0xFF, 0xDB,
		0xDB, 0xDB, 0xDB, 0xDB, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x6E 'n'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xDC, 0x66, 0x66,
		0x66, 0x66, 0x66, 0x66, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x6F 'o'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x7C, 0xC6, 0xC6,
		0xC6, 0xC6, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x70 'p'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xDC, 0x66, 0x66,
		0x66, 0x66, 0x66, 0x7C, 0x60, 0x60, 0xF0, 0x00,
	},
	{ // 0x71 'q'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x76, 0xCC, 0xCC,
		0xCC, 0xCC, 0xCC, 0x7C, 0x0C, 0x0C, 0x1E, 0x00,
	},
	{ // 0x72 'r'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xDC, 0x76, 0x66,
		0x60, 0x60, 0x60, 0xF0, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x73 's'
		0x00, 0x00, 0x00, 0x00, 0x00, 0x7C, 0xC6, 0x60,
		0x38, 0x0C, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x74 't'
		0x00, 0x00, 0x10, 0x30, 0x30, 0xFC, 0x30, 0x30,
		0x30, 0x30, 0x36, 0x1C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x75 'u'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xCC, 0xCC, 0xCC,
		0xCC, 0xCC, 0xCC, 0x76, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x76 'v'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xC3, 0xC3, 0xC3,
		0xC3, 0x66, 0x3C, 0x18, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x77 'w'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xC3, 0xC3, 0xC3,
		0xDB, 0xDB, 0xFF, 0x66, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x78 'x'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xC3, 0x66, 0x3C,
		0x18, 0x3C, 0x66, 0xC3, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x79 'y'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xC6, 0xC6, 0xC6,
		0xC6, 0xC6, 0xC6, 0x7E, 0x06, 0x0C, 0xF8, 0x00,
	},
	{ // 0x7A 'z'
		0x00, 0x00, 0x00, 0x00, 0x00, 0xFE, 0xCC, 0x18,
		0x30, 0x60, 0xC6, 0xFE, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x7B '{'
		0x00, 0x00, 0x0E, 0x18, 0x18, 0x18, 0x70, 0x18,
		0x18, 0x18, 0x18, 0x0E, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x7C '|'
		0x00, 0x00, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18,
		0x18, 0x18, 0x18, 0x18, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x7D '}'
		0x00, 0x00, 0x70, 0x18, 0x18, 0x18, 0x0E, 0x18,
		0x18, 0x18, 0x18, 0x70, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x7E '~'
		0x00, 0x00, 0x76, 0xDC, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x7F degree sign
		0x00, 0x38, 0x6C, 0x6C, 0x38, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x80 e acute
		0x00, 0x0C, 0x18, 0x30, 0x00, 0x7C, 0xC6, 0xFE,
		0xC0, 0xC0, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
	{ // 0x81 e grave
		0x00, 0x60, 0x30, 0x18, 0x00, 0x7C, 0xC6, 0xFE,
		0xC0, 0xC0, 0xC6, 0x7C, 0x00, 0x00, 0x00, 0x00,
	},
}
