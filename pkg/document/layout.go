package document

import "strings"

// Page geometry in millimetres (A4 portrait).
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	HeaderHeight = 45.0

	MarginLeft  = 20.0
	RuleRight   = 190.0
	ValueX      = 70.0
	ValueWidth  = 120.0
	LineHeight  = 6.0
	PairPadding = 4.0

	FirstPageStartY    = 60.0
	ContinuationStartY = 20.0
	SectionBreakY      = 240.0
	SafeBottomY        = 275.0
	FooterY            = 285.0

	titleGap       = 5.0
	titleAfterRule = 10.0
	sectionSpacing = 10.0
)

// Entry is one label/value pair of a section.
type Entry struct {
	Label string
	Value string
}

// Section is a titled group of entries. Values are expected to be already
// substituted with the placeholder when empty.
type Section struct {
	Title   string
	Entries []Entry
}

// Header is the text painted inside the coloured band of page one.
type Header struct {
	Title       string
	Studio      string
	GeneratedAt string
	Footer      string
}

// Result describes where the layout put things.
type Result struct {
	Pages int
	// SectionPages[i] is the page on which the title of section i was drawn.
	SectionPages []int
}

type cursor struct {
	page int
	y    float64
}

// Layout paints header, sections and footer onto canvas. Page breaks are
// driven purely by the cumulative height of the content.
func Layout(c Canvas, header Header, sections []Section) Result {
	cur := &cursor{}
	newPage(c, cur, FirstPageStartY)
	paintHeader(c, header)

	res := Result{SectionPages: make([]int, 0, len(sections))}
	for _, s := range sections {
		if cur.y > SectionBreakY {
			newPage(c, cur, ContinuationStartY)
		}
		res.SectionPages = append(res.SectionPages, cur.page)

		c.SetTextColor(BrandColor)
		c.SetFont(StyleBold, 14)
		c.Text(MarginLeft, cur.y, strings.ToUpper(s.Title))
		cur.y += titleGap
		c.Line(MarginLeft, cur.y, RuleRight, cur.y, BrandColor, 0.5)
		cur.y += titleAfterRule

		for _, e := range s.Entries {
			layoutEntry(c, cur, e)
		}
		cur.y += sectionSpacing
	}

	c.SetPage(1)
	c.SetFont(StyleRegular, 8)
	c.SetTextColor(FooterColor)
	c.Text(MarginLeft, FooterY, header.Footer)

	res.Pages = cur.page
	return res
}

func layoutEntry(c Canvas, cur *cursor, e Entry) {
	c.SetFont(StyleRegular, 10)
	lines := c.SplitText(e.Value, ValueWidth)
	if len(lines) == 0 {
		lines = []string{""}
	}
	height := blockHeight(len(lines))

	if cur.y+height > SafeBottomY && cur.y > ContinuationStartY {
		newPage(c, cur, ContinuationStartY)
	}

	// A value taller than a whole page is continued on the next pages,
	// the label is only repeated at the top of the first chunk.
	label := e.Label + ":"
	for len(lines) > 0 {
		n := len(lines)
		if cur.y+blockHeight(n) > SafeBottomY {
			n = fitLines(SafeBottomY - cur.y)
		}
		c.SetTextColor(BodyColor)
		if label != "" {
			c.SetFont(StyleBold, 10)
			c.Text(MarginLeft, cur.y, label)
			label = ""
		}
		c.SetFont(StyleRegular, 10)
		for i, line := range lines[:n] {
			c.Text(ValueX, cur.y+float64(i)*LineHeight, line)
		}
		cur.y += blockHeight(n)
		lines = lines[n:]
		if len(lines) > 0 {
			newPage(c, cur, ContinuationStartY)
		}
	}
}

func blockHeight(lines int) float64 {
	return float64(lines)*LineHeight + PairPadding
}

func fitLines(space float64) int {
	n := int((space - PairPadding) / LineHeight)
	if n < 1 {
		return 1
	}
	return n
}

func newPage(c Canvas, cur *cursor, startY float64) {
	c.AddPage()
	c.FillRect(0, 0, PageWidth, PageHeight, BackgroundColor)
	cur.page++
	cur.y = startY
}

func paintHeader(c Canvas, h Header) {
	c.FillRect(0, 0, PageWidth, HeaderHeight, BrandColor)

	c.SetTextColor(White)
	c.SetFont(StyleBold, 26)
	c.Text(MarginLeft, 25, h.Title)

	c.SetFont(StyleRegular, 10)
	c.Text(150, 25, h.Studio)
	c.Text(150, 32, h.GeneratedAt)
}
