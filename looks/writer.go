package looks

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/goliatone/go-errors"
)

// Render paginates a document into PDF bytes. Pagination is fixed-size: the
// page geometry comes from the document, overflow starts a new page. This
// path has no browser dependency and succeeds for any valid model.
func Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("document is required", errors.CategoryValidation).
			WithTextCode("DOCUMENT_REQUIRED")
	}

	pageSize := "A4"
	if doc.Page == PageLetter {
		pageSize = "Letter"
	}

	pdf := fpdf.New("P", "pt", pageSize, "")
	pdf.SetMargins(doc.Margins.Left, doc.Margins.Top, doc.Margins.Right)
	pdf.SetAutoPageBreak(true, doc.Margins.Bottom)
	pdf.AddPage()

	w := &writer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		family: coreFamily(doc.Font.Family),
	}
	pageW, _ := pdf.GetPageSize()
	w.renderBlocks(doc.Blocks, doc.Margins.Left, pageW-doc.Margins.Left-doc.Margins.Right)

	if pdf.Err() {
		return nil, errors.Wrap(pdf.Error(), errors.CategoryInternal, "pdf pagination failed").
			WithTextCode("PDF_WRITE_FAILED")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "pdf output failed").
			WithTextCode("PDF_WRITE_FAILED")
	}
	return buf.Bytes(), nil
}

// coreFamily maps a requested font family onto the built-in core fonts.
func coreFamily(family string) string {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "times", "georgia", "serif":
		return "Times"
	case "courier", "mono", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}

type writer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	family string
}

func lineHeight(size float64) float64 { return size * 1.45 }

func (w *writer) setFont(style string, size float64, color RGB) {
	w.pdf.SetFont(w.family, style, size)
	w.pdf.SetTextColor(color.R, color.G, color.B)
}

// renderBlocks lays out blocks constrained to the horizontal band [x, x+width].
// The left/right margins are narrowed for the duration so automatic page
// breaks continue inside the same band.
func (w *writer) renderBlocks(blocks []Block, x, width float64) {
	pageW, _ := w.pdf.GetPageSize()
	prevL, _, prevR, _ := w.pdf.GetMargins()
	w.pdf.SetLeftMargin(x)
	w.pdf.SetRightMargin(pageW - x - width)
	defer func() {
		w.pdf.SetLeftMargin(prevL)
		w.pdf.SetRightMargin(prevR)
	}()

	for _, block := range blocks {
		switch b := block.(type) {
		case Header:
			w.header(b, x, width)
		case SectionTitle:
			w.sectionTitle(b, x, width)
		case Paragraph:
			w.paragraph(b, x, width)
		case EntryHead:
			w.entryHead(b, x, width)
		case Bullets:
			w.bullets(b, x, width)
		case KeyValue:
			w.keyValue(b, x, width)
		case SkillBar:
			w.skillBar(b, x, width)
		case Divider:
			w.divider(b, x, width)
		case Spacer:
			w.pdf.Ln(b.Height)
		case Columns:
			w.columns(b, x, width)
		}
	}
}

func (w *writer) header(b Header, x, width float64) {
	if b.Band != nil {
		bandH := b.PadY*2 + lineHeight(b.NameSize) + lineHeight(b.NameSize/2)
		pageW, _ := w.pdf.GetPageSize()
		w.pdf.SetFillColor(b.Band.R, b.Band.G, b.Band.B)
		w.pdf.Rect(0, w.pdf.GetY()-w.topMargin(), pageW, bandH+w.topMargin(), "F")
	}

	w.pdf.SetXY(x, w.pdf.GetY()+b.PadY)
	w.setFont("B", b.NameSize, b.TextOn)
	w.pdf.MultiCell(width, lineHeight(b.NameSize), w.tr(b.Name), "", "L", false)

	if b.Title != "" {
		w.setFont("", b.NameSize/2, b.Accent)
		w.pdf.SetX(x)
		w.pdf.MultiCell(width, lineHeight(b.NameSize/2), w.tr(b.Title), "", "L", false)
	}

	if b.Band == nil && len(b.Contact) > 0 {
		w.setFont("", 9, b.Accent)
		w.pdf.SetX(x)
		w.pdf.MultiCell(width, lineHeight(9), w.tr(strings.Join(b.Contact, "  ·  ")), "", "L", false)
	}
	w.pdf.Ln(b.PadY)
}

func (w *writer) topMargin() float64 {
	_, top, _, _ := w.pdf.GetMargins()
	return top
}

func (w *writer) sectionTitle(b SectionTitle, x, width float64) {
	w.pdf.Ln(b.SpaceBy)
	w.setFont("B", b.Size, b.Color)
	w.pdf.SetX(x)
	w.pdf.MultiCell(width, lineHeight(b.Size), w.tr(b.Text), "", "L", false)
	if b.Rule {
		y := w.pdf.GetY() + 1
		w.pdf.SetDrawColor(b.Color.R, b.Color.G, b.Color.B)
		w.pdf.SetLineWidth(0.6)
		w.pdf.Line(x, y, x+width, y)
		w.pdf.SetY(y + 3)
	}
}

func (w *writer) paragraph(b Paragraph, x, width float64) {
	w.pdf.Ln(b.SpaceBy)
	style := ""
	if b.Italic {
		style = "I"
	}
	w.setFont(style, b.Size, b.Color)
	w.pdf.SetX(x)
	w.pdf.MultiCell(width, lineHeight(b.Size), w.tr(b.Text), "", "L", false)
}

func (w *writer) entryHead(b EntryHead, x, width float64) {
	w.pdf.Ln(b.SpaceBy)
	w.setFont("B", b.Size, b.Color)
	w.pdf.SetX(x)

	asideW := 0.0
	if b.Aside != "" {
		w.pdf.SetFont(w.family, "", b.Size-1)
		asideW = w.pdf.GetStringWidth(w.tr(b.Aside)) + 4
		w.pdf.SetFont(w.family, "B", b.Size)
	}

	w.pdf.CellFormat(width-asideW, lineHeight(b.Size), w.tr(b.Primary), "", 0, "L", false, 0, "")
	if b.Aside != "" {
		w.setFont("", b.Size-1, b.Muted)
		w.pdf.CellFormat(asideW, lineHeight(b.Size), w.tr(b.Aside), "", 1, "R", false, 0, "")
	} else {
		w.pdf.Ln(lineHeight(b.Size))
	}

	if b.Secondary != "" {
		w.setFont("", b.Size-1, b.Muted)
		w.pdf.SetX(x)
		w.pdf.MultiCell(width, lineHeight(b.Size-1), w.tr(b.Secondary), "", "L", false)
	}
}

func (w *writer) bullets(b Bullets, x, width float64) {
	w.pdf.Ln(b.SpaceBy)
	w.setFont("", b.Size, b.Color)
	for _, item := range b.Items {
		w.pdf.SetX(x)
		w.pdf.CellFormat(b.Indent, lineHeight(b.Size), w.tr("–"), "", 0, "R", false, 0, "")
		w.pdf.MultiCell(width-b.Indent, lineHeight(b.Size), w.tr(item), "", "L", false)
	}
}

func (w *writer) keyValue(b KeyValue, x, width float64) {
	w.pdf.Ln(b.SpaceBy)
	w.setFont("B", b.Size, b.Color)
	w.pdf.SetX(x)
	keyW := width * 0.38
	w.pdf.CellFormat(keyW, lineHeight(b.Size), w.tr(b.Key), "", 0, "L", false, 0, "")
	w.setFont("", b.Size, b.Muted)
	w.pdf.MultiCell(width-keyW, lineHeight(b.Size), w.tr(b.Value), "", "L", false)
}

const (
	skillBarHeight = 4
	skillBarFrac   = 0.58
)

func (w *writer) skillBar(b SkillBar, x, width float64) {
	w.pdf.Ln(b.SpaceBy)
	w.setFont("", b.Size, b.Color)
	w.pdf.SetX(x)
	w.pdf.MultiCell(width, lineHeight(b.Size), w.tr(b.Label), "", "L", false)

	if b.Level <= 0 {
		return
	}
	level := b.Level
	if level > 5 {
		level = 5
	}
	barW := width * skillBarFrac
	y := w.pdf.GetY() + 1
	w.pdf.SetFillColor(b.Track.R, b.Track.G, b.Track.B)
	w.pdf.Rect(x, y, barW, skillBarHeight, "F")
	w.pdf.SetFillColor(b.Fill.R, b.Fill.G, b.Fill.B)
	w.pdf.Rect(x, y, barW*float64(level)/5, skillBarHeight, "F")
	w.pdf.SetY(y + skillBarHeight + 2)
}

func (w *writer) divider(b Divider, x, width float64) {
	w.pdf.Ln(b.SpaceBy)
	y := w.pdf.GetY()
	w.pdf.SetDrawColor(b.Color.R, b.Color.G, b.Color.B)
	w.pdf.SetLineWidth(0.4)
	w.pdf.Line(x, y, x+width, y)
	w.pdf.SetY(y + 2)
}

func (w *writer) columns(b Columns, x, width float64) {
	frac := b.SidebarFrac
	if frac <= 0 || frac >= 1 {
		frac = 0.32
	}
	sidebarW := width * frac
	mainX := x + sidebarW + b.Gap
	mainW := width - sidebarW - b.Gap

	startY := w.pdf.GetY()

	if b.SidebarFill != nil {
		_, pageH := w.pdf.GetPageSize()
		w.pdf.SetFillColor(b.SidebarFill.R, b.SidebarFill.G, b.SidebarFill.B)
		w.pdf.Rect(x-4, startY-4, sidebarW+8, pageH-startY-w.bottomMargin()+4, "F")
	}

	w.pdf.SetY(startY)
	w.renderBlocks(b.Sidebar, x, sidebarW)
	sidebarY := w.pdf.GetY()

	w.pdf.SetY(startY)
	w.renderBlocks(b.Main, mainX, mainW)
	if sidebarY > w.pdf.GetY() {
		w.pdf.SetY(sidebarY)
	}
}

func (w *writer) bottomMargin() float64 {
	_, _, _, bottom := w.pdf.GetMargins()
	return bottom
}
