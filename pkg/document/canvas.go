package document

// Color is an RGB triple.
type Color struct {
	R, G, B int
}

var (
	BrandColor      = Color{121, 85, 88}   // #795558
	BackgroundColor = Color{252, 246, 239} // #FCF6EF
	BodyColor       = Color{60, 60, 60}
	FooterColor     = Color{186, 165, 164} // brand at 50% over the background
	White           = Color{255, 255, 255}
)

const (
	StyleRegular = ""
	StyleBold    = "B"
)

// Canvas is the set of drawing calls the layout needs from a backend.
// Coordinates are in millimetres from the top-left corner of the page.
type Canvas interface {
	AddPage()
	SetPage(n int)
	FillRect(x, y, w, h float64, c Color)
	Line(x1, y1, x2, y2 float64, c Color, width float64)
	SetFont(style string, size float64)
	SetTextColor(c Color)
	Text(x, y float64, s string)
	// SplitText wraps s to the given width using the current font.
	SplitText(s string, width float64) []string
}
