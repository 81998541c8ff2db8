package parser

// ColumnLetters returns the spreadsheet column name for a 0-based column
// index: 0 is "A", 25 is "Z", 26 is "AA". Negative indexes yield "".
func ColumnLetters(col int) string {
	if col < 0 {
		return ""
	}

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var buf [16]byte
	i := len(buf)
	for {
		i--
		buf[i] = alphabet[col%26]
		col = col/26 - 1
		if col < 0 {
			break
		}
	}
	return string(buf[i:])
}
