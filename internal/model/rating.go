package model

// Grade is the closed set of rating labels.
type Grade string

const (
	GradeS       Grade = "S"
	GradeA       Grade = "A"
	GradeB       Grade = "B"
	GradeC       Grade = "C"
	GradeD       Grade = "D"
	GradeDMinus  Grade = "D-"
	GradeEPlus   Grade = "E+"
	GradeE       Grade = "E"
	GradeEMinus  Grade = "E-"
	GradeEDouble Grade = "E--"
	GradeNoData  Grade = "insufficient-data"
)

// Color is the hex display color attached to a rating.
type Color string

const (
	ColorPurple     Color = "#9370DB"
	ColorBlue       Color = "#1E90FF"
	ColorOrange     Color = "#FFA500"
	ColorDarkRed    Color = "#8B0000"
	ColorRed        Color = "#FF4444"
	ColorGreen      Color = "#00CC00"
	ColorLightGreen Color = "#90EE90"
	ColorGray       Color = "#808080"
	ColorLightGray  Color = "#D3D3D3"
)

// Rating is the qualitative classification of a single row, derived
// from its RSI and momentum/volatility ratio.
type Rating struct {
	Grade       Grade
	Name        string // short mnemonic, e.g. "golden-pit"
	Description string
	Color       Color
}
