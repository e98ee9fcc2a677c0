package game

const (
	BoardWidth  = 10
	BoardHeight = 20
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceS
	PieceZ
	PieceO
	PieceT
	PieceL
	PieceJ

	pieceCount = 7
)

var pieceNames = [pieceCount]string{"I", "S", "Z", "O", "T", "L", "J"}

func (t PieceType) String() string {
	if !t.Valid() {
		return "?"
	}
	return pieceNames[t]
}

// Valid reports whether t names one of the seven catalog pieces.
func (t PieceType) Valid() bool {
	return t >= 0 && t < pieceCount
}

// Color is the display tag a renderer maps to a terminal colour.
type Color int

const (
	ColorCyan Color = iota + 1
	ColorGreen
	ColorRed
	ColorYellow
	ColorMagenta
	ColorBlue
	ColorWhite
)

type definition struct {
	shape [][]bool
	color Color
}

// catalog is never written after package init. Definition hands out copies.
var catalog = [pieceCount]definition{
	PieceI: {
		shape: [][]bool{
			{true, true, true, true},
		},
		color: ColorCyan,
	},
	PieceS: {
		shape: [][]bool{
			{true, true, false},
			{false, true, true},
		},
		color: ColorGreen,
	},
	PieceZ: {
		shape: [][]bool{
			{false, true, true},
			{true, true, false},
		},
		color: ColorRed,
	},
	PieceO: {
		shape: [][]bool{
			{true, true},
			{true, true},
		},
		color: ColorYellow,
	},
	PieceT: {
		shape: [][]bool{
			{true, true, true},
			{false, true, false},
		},
		color: ColorMagenta,
	},
	PieceL: {
		shape: [][]bool{
			{true, true, true},
			{true, false, false},
		},
		color: ColorBlue,
	},
	PieceJ: {
		shape: [][]bool{
			{true, true, true},
			{false, false, true},
		},
		color: ColorWhite,
	},
}

// Definition returns a fresh copy of the spawn orientation of t and its colour.
func Definition(t PieceType) (Shape, Color) {
	d := catalog[t]
	return Shape(d.shape).Clone(), d.color
}

// ColorOf returns the display colour of t.
func ColorOf(t PieceType) Color {
	return catalog[t].color
}
