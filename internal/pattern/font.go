package pattern

// FontHeight is the row count of the block-letter font.
const FontHeight = 5

// blockFont is a 3x5 block-letter font. 'X' cells are painted with the
// requested fill character, spaces stay blank.
var blockFont = map[rune][FontHeight]string{
	'A': {" X ", "X X", "XXX", "X X", "X X"},
	'B': {"XX ", "X X", "XX ", "X X", "XX "},
	'C': {" XX", "X  ", "X  ", "X  ", " XX"},
	'D': {"XX ", "X X", "X X", "X X", "XX "},
	'E': {"XXX", "X  ", "XX ", "X  ", "XXX"},
	'F': {"XXX", "X  ", "XX ", "X  ", "X  "},
	'G': {" XX", "X  ", "X X", "X X", " XX"},
	'H': {"X X", "X X", "XXX", "X X", "X X"},
	'I': {"XXX", " X ", " X ", " X ", "XXX"},
	'J': {"  X", "  X", "  X", "X X", " X "},
	'K': {"X X", "XX ", "X  ", "XX ", "X X"},
	'L': {"X  ", "X  ", "X  ", "X  ", "XXX"},
	'M': {"X X", "XXX", "X X", "X X", "X X"},
	'N': {"XX ", "X X", "X X", "X X", "X X"},
	'O': {" X ", "X X", "X X", "X X", " X "},
	'P': {"XX ", "X X", "XX ", "X  ", "X  "},
	'Q': {" X ", "X X", "X X", " XX", "  X"},
	'R': {"XX ", "X X", "XX ", "XX ", "X X"},
	'S': {" XX", "X  ", " X ", "  X", "XX "},
	'T': {"XXX", " X ", " X ", " X ", " X "},
	'U': {"X X", "X X", "X X", "X X", "XXX"},
	'V': {"X X", "X X", "X X", "X X", " X "},
	'W': {"X X", "X X", "X X", "XXX", "X X"},
	'X': {"X X", "X X", " X ", "X X", "X X"},
	'Y': {"X X", "X X", " X ", " X ", " X "},
	'Z': {"XXX", "  X", " X ", "X  ", "XXX"},
	'0': {"XXX", "X X", "X X", "X X", "XXX"},
	'1': {" X ", "XX ", " X ", " X ", "XXX"},
	'2': {"XXX", "  X", "XXX", "X  ", "XXX"},
	'3': {"XXX", "  X", "XXX", "  X", "XXX"},
	'4': {"X X", "X X", "XXX", "  X", "  X"},
	'5': {"XXX", "X  ", "XXX", "  X", "XXX"},
	'6': {"XXX", "X  ", "XXX", "X X", "XXX"},
	'7': {"XXX", "  X", " X ", " X ", " X "},
	'8': {"XXX", "X X", "XXX", "X X", "XXX"},
	'9': {"XXX", "X X", "XXX", "  X", "XXX"},
	'!': {" X ", " X ", " X ", "   ", " X "},
	'?': {"XXX", "  X", " XX", "   ", " X "},
	'.': {"   ", "   ", "   ", "   ", " X "},
	',': {"   ", "   ", "   ", " X ", "X  "},
	'-': {"   ", "   ", "XXX", "   ", "   "},
	'\'': {" X ", " X ", "   ", "   ", "   "},
	' ': {"  ", "  ", "  ", "  ", "  "},
}
