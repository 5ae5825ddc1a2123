package basic

// tokenKind classifies how a token byte's argument, if any, is encoded in
// the line body.
type tokenKind uint8

const (
	kindInvalid tokenKind = iota
	kindSimple
	kindRestOfLine
	kindQuotedString
	kindUnquotedString
	kindLineNumber
	kindIdentifierStart
)

type tokenInfo struct {
	text string
	kind tokenKind
}

var tokenTable [256]tokenInfo

func init() {
	for i := 'A'; i <= 'Z'; i++ {
		tokenTable[i] = tokenInfo{kind: kindIdentifierStart}
	}
	for i := 'a'; i <= 'z'; i++ {
		tokenTable[i] = tokenInfo{kind: kindIdentifierStart}
	}
	for _, c := range []byte{'\\', '[', ']', '_', '@'} {
		tokenTable[c] = tokenInfo{kind: kindIdentifierStart}
	}

	// Transcribed from the TOKENS table and decode_line's elif chain: a
	// token with no branch there (0xab-0xaf, 0xb9, 0xe2-0xe7, 0xf2, and the
	// command-mode-only 0x00-0x09 range) has no entry here either, and
	// correctly falls through to kindInvalid.
	simple := map[byte]string{
		0x81: "ELSE ",
		0x82: " :: ",
		0x84: "IF ",
		0x85: "GO ",
		0x86: "GOTO ",
		0x87: "GOSUB ",
		0x88: "RETURN ",
		0x89: "DEF ",
		0x8a: "DIM ",
		0x8b: "END ",
		0x8c: "FOR ",
		0x8d: "LET ",
		0x8e: "BREAK ",
		0x8f: "UNBREAK ",
		0x90: "TRACE ",
		0x91: "UNTRACE ",
		0x92: "INPUT ",
		0x93: "DATA ",
		0x94: "RESTORE ",
		0x95: "RANDOMIZE ",
		0x96: "NEXT ",
		0x97: "READ ",
		0x98: "STOP ",
		0x99: "DELETE ",
		0x9b: "ON ",
		0x9c: "PRINT ",
		0x9d: "CALL ",
		0x9e: "OPTION ",
		0x9f: "OPEN ",
		0xa0: "CLOSE ",
		0xa1: "SUB ",
		0xa2: "DISPLAY ",
		0xa3: "IMAGE ",
		0xa4: "ACCEPT ",
		0xa5: "ERROR ",
		0xa6: "WARNING ",
		0xa7: "SUBEXIT ",
		0xa8: "SUBEND ",
		0xa9: "RUN ",
		0xaa: "LINPUT ",
		0xb0: "THEN ",
		0xb1: "TO ",
		0xb2: "STEP ",
		0xb3: ", ",
		0xb4: " ; ",
		0xb5: " : ",
		0xb6: ") ",
		0xb7: "( ",
		0xb8: "& ",
		0xba: "OR ",
		0xbb: "AND ",
		0xbc: "XOR ",
		0xbd: "NOT ",
		0xbe: "= ",
		0xbf: "< ",
		0xc0: "> ",
		0xc1: "+ ",
		0xc2: "- ",
		0xc3: "* ",
		0xc4: "/ ",
		0xc5: "^ ",
		0xca: "EOF ",
		0xcb: "ABS ",
		0xcc: "ATN ",
		0xcd: "COS ",
		0xce: "EXP ",
		0xcf: "INT ",
		0xd0: "LOG ",
		0xd1: "SGN ",
		0xd2: "SIN ",
		0xd3: "SQR ",
		0xd4: "TAN ",
		0xd5: "LEN ",
		0xd6: "CHR$ ",
		0xd7: "RND ",
		0xd8: "SEG$ ",
		0xd9: "POS ",
		0xda: "VAL ",
		0xdb: "STR$ ",
		0xdc: "ASC ",
		0xdd: "PI ",
		0xde: "REC ",
		0xdf: "MAX ",
		0xe0: "MIN ",
		0xe1: "RPT$ ",
		0xe8: "NUMERIC ",
		0xe9: "DIGIT ",
		0xea: "UALPHA ",
		0xeb: "SIZE ",
		0xec: "ALL ",
		0xed: "USING ",
		0xee: "BEEP ",
		0xef: "ERASE ",
		0xf0: "AT ",
		0xf1: "BASE ",
		0xf3: "VARIABLE ",
		0xf4: "RELATIVE ",
		0xf5: "INTERNAL ",
		0xf6: "SEQUENTIAL ",
		0xf7: "OUTPUT ",
		0xf8: "UPDATE ",
		0xf9: "APPEND ",
		0xfa: "FIXED ",
		0xfb: "PERMANENT ",
		0xfc: "TAB ",
		0xfd: "# ",
		0xfe: "VALIDATE ",
	}
	for b, text := range simple {
		tokenTable[b] = tokenInfo{text: text, kind: kindSimple}
	}

	// The rest-of-line tokens carry their own leading/trailing spacing, to
	// be written verbatim ahead of the raw remainder of the line.
	tokenTable[0x83] = tokenInfo{text: " ! ", kind: kindRestOfLine}
	tokenTable[0x9a] = tokenInfo{text: "REM ", kind: kindRestOfLine}

	tokenTable[0xc7] = tokenInfo{kind: kindQuotedString}
	tokenTable[0xc8] = tokenInfo{kind: kindUnquotedString}
	tokenTable[0xc9] = tokenInfo{kind: kindLineNumber}
}

// isIdentifierCont reports whether b may continue an identifier once
// started; identifiers terminate after a $ is consumed.
func isIdentifierCont(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') ||
		b == '$' || b == '_' || b == '@'
}
