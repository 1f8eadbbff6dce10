package document

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

const ContentType = "application/pdf"

// Document is everything needed to produce one artifact.
type Document struct {
	Header     Header
	Sections   []Section
	ClientName string
}

// Artifact is a rendered PDF ready to be handed to the user.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
	Pages       int
	Layout      Result
}

func (a *Artifact) Size() int {
	return len(a.Data)
}

type IRenderer interface {
	Render(ctx context.Context, doc Document) (*Artifact, error)
}

type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// WithClock makes the embedded creation date reproducible.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

func (r *Renderer) Render(ctx context.Context, doc Document) (art *Artifact, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			art = nil
			err = fmt.Errorf("pdf backend panic: %v", rec)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(r.now())
	pdf.SetTitle(doc.Header.Title, true)
	pdf.SetAuthor(doc.Header.Studio, true)

	canvas := newPDFCanvas(pdf)
	result := Layout(canvas, doc.Header, doc.Sections)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}

	return &Artifact{
		FileName:    FileName(doc.ClientName),
		ContentType: ContentType,
		Data:        buf.Bytes(),
		Pages:       pdf.PageCount(),
		Layout:      result,
	}, nil
}

// pdfCanvas binds Canvas to fpdf. Core fonts are cp1252 encoded, so text is
// translated on the way in and wrapped lines are decoded back to UTF-8.
type pdfCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newPDFCanvas(pdf *fpdf.Fpdf) *pdfCanvas {
	return &pdfCanvas{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (p *pdfCanvas) AddPage() {
	p.pdf.AddPage()
}

func (p *pdfCanvas) SetPage(n int) {
	p.pdf.SetPage(n)
}

func (p *pdfCanvas) FillRect(x, y, w, h float64, c Color) {
	p.pdf.SetFillColor(c.R, c.G, c.B)
	p.pdf.Rect(x, y, w, h, "F")
}

func (p *pdfCanvas) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	p.pdf.SetDrawColor(c.R, c.G, c.B)
	p.pdf.SetLineWidth(width)
	p.pdf.Line(x1, y1, x2, y2)
}

func (p *pdfCanvas) SetFont(style string, size float64) {
	p.pdf.SetFont("Helvetica", style, size)
}

func (p *pdfCanvas) SetTextColor(c Color) {
	p.pdf.SetTextColor(c.R, c.G, c.B)
}

func (p *pdfCanvas) Text(x, y float64, s string) {
	p.pdf.Text(x, y, p.tr(s))
}

// SplitText wraps on the cp1252 bytes fpdf measures; runes outside the
// code page come out as '.'.
func (p *pdfCanvas) SplitText(s string, width float64) []string {
	chunks := p.pdf.SplitLines([]byte(p.tr(s)), width)
	dec := charmap.Windows1252.NewDecoder()
	lines := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		utf, err := dec.Bytes(chunk)
		if err != nil {
			utf = chunk
		}
		lines = append(lines, string(utf))
	}
	return lines
}
