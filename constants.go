package main

type Kind int

const (
	KindRectangle Kind = iota
	KindCircle
	KindTriangle
	KindLine
)

var kindNames = [...]string{
	KindRectangle: "Rectangle",
	KindCircle:    "Circle",
	KindTriangle:  "Triangle",
	KindLine:      "Line",
}

// String returns the tag used in saved files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Arity is the number of size parameters the kind takes.
func (k Kind) Arity() int {
	if k == KindCircle {
		return 1
	}
	return 2
}

type ColorTag int

const (
	ColorDefault ColorTag = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	numColors
)

type Mode int

const (
	ModeCommand Mode = iota
	ModeHelp
)

const (
	defaultWidth     = 16
	defaultHeight    = 16
	defaultUndoDepth = 100
	maxBoardSide     = 1024
	blankCell        = ' '
	noSelection      = -1
)

func validBoardSide(n int) bool {
	return n > 0 && n <= maxBoardSide
}
