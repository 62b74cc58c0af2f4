package font

import "strings"

// Special maps a multi-byte UTF-8 sequence to the glyph code that renders it.
type Special struct {
	Seq  string
	Code byte
}

// Specials lists every multi-byte sequence the fonts can draw. Adding a
// character means adding a row here and a glyph to each table.
var Specials = []Special{
	{Seq: "\xc2\xb0", Code: 127}, // °
	{Seq: "\xc3\xa9", Code: 128}, // é
	{Seq: "\xc3\xa8", Code: 129}, // è
}

// Decode turns text into glyph codes. Sequences in Specials become their
// code, newline and carriage return are dropped, printable ASCII passes
// through and every other byte becomes '?'.
func Decode(text string) []byte {
	codes := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		if code, n, ok := matchSpecial(text[i:]); ok {
			codes = append(codes, code)
			i += n
			continue
		}
		b := text[i]
		i++
		switch {
		case b == '\n' || b == '\r':
		case b >= FirstCode && b <= 126:
			codes = append(codes, b)
		default:
			codes = append(codes, '?')
		}
	}
	return codes
}

func matchSpecial(s string) (byte, int, bool) {
	for _, sp := range Specials {
		if strings.HasPrefix(s, sp.Seq) {
			return sp.Code, len(sp.Seq), true
		}
	}
	return 0, 0, false
}
