package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"

	"github.com/emrekaya/folio-gateway/internal/app/models"
	"github.com/emrekaya/folio-gateway/internal/upstream"
)

const (
	pageWidth    = 210.0
	pageMargin   = 10.0
	contentWidth = pageWidth - 2*pageMargin
	lineHeight   = 5.0
	breakAt      = 270.0
)

// ExportService renders one student's approved portfolio as a PDF
// document: cover page, one table per section with approved items,
// signature block, watermark and page numbers.
type ExportService struct {
	client      *upstream.Client
	institution string
	watermark   string
	logger      zerolog.Logger
}

// NewExportService creates an ExportService.
func NewExportService(client *upstream.Client, institution, watermark string, logger zerolog.Logger) *ExportService {
	return &ExportService{
		client:      client,
		institution: institution,
		watermark:   watermark,
		logger:      logger,
	}
}

// GeneratePortfolioPDF builds the document for one student record. Only
// items with Approved status are included; sections with no approved items
// are omitted entirely. A student with nothing approved still yields a
// valid document with cover page and signature block.
func (s *ExportService) GeneratePortfolioPDF(ctx context.Context, token string, rec models.StudentRecord) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Portfolio - %s", rec.Name), true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		s.stampWatermark(pdf)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	s.coverPage(ctx, pdf, token, rec)

	for _, cat := range models.Categories {
		approved := approvedItems(rec.Section(cat.Key))
		if len(approved) == 0 {
			continue
		}
		s.sectionTable(pdf, cat, approved)
	}

	s.signatureBlock(pdf, rec)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render portfolio document: %w", err)
	}
	return buf.Bytes(), nil
}

// approvedItems filters a section down to approved entries. This is the
// sole status filtering the export applies.
func approvedItems(items []models.Item) []models.Item {
	out := []models.Item{}
	for _, item := range items {
		if item.EffectiveStatus() == models.StatusApproved {
			out = append(out, item)
		}
	}
	return out
}

// stampWatermark draws the translucent rotated institution mark behind the
// page content. Registered as the header func so every page gets it before
// anything else is drawn.
func (s *ExportService) stampWatermark(pdf *fpdf.Fpdf) {
	if s.watermark == "" {
		return
	}
	_, pageH := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "B", 56)
	pdf.SetTextColor(150, 150, 150)
	pdf.SetAlpha(0.08, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(45, pageWidth/2, pageH/2)
	pdf.SetXY(0, pageH/2-15)
	pdf.CellFormat(pageWidth, 30, s.watermark, "", 0, "C", false, 0, "")
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(pageMargin, pageMargin)
}

// coverPage renders the institution banner, the profile label/value pairs,
// the optional photo and the free-text About/Vision paragraphs.
func (s *ExportService) coverPage(ctx context.Context, pdf *fpdf.Fpdf, token string, rec models.StudentRecord) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentWidth, 12, s.institution, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(contentWidth, 8, "Student Portfolio", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	profile := models.Profile{}
	if rec.Profile != nil {
		profile = *rec.Profile
	}

	if profile.Photo != "" {
		s.placePhoto(ctx, pdf, token, profile.Photo)
	}

	name := profile.FullName()
	if name == "" {
		name = rec.Name
	}

	pairs := []struct{ label, value string }{
		{"Name", name},
		{"Email", firstNonEmpty(profile.Email, rec.Email)},
		{"Phone", profile.Phone},
		{"Date of Birth", profile.DateOfBirth},
		{"Gender", profile.Gender},
		{"Institution", profile.Institution},
		{"Program", profile.Program},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 7, p.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(contentWidth-45, 7, p.value, "", "L", false)
	}

	for _, para := range []struct{ heading, text string }{
		{"About", profile.About},
		{"Vision", profile.Vision},
	} {
		if para.text == "" {
			continue
		}
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentWidth, 8, para.heading, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(contentWidth, 6, para.text, "", "L", false)
	}
}

// placePhoto fetches and draws the profile photo in the top-right corner.
// Any failure is logged and the page is rendered without the photo.
func (s *ExportService) placePhoto(ctx context.Context, pdf *fpdf.Fpdf, token, path string) {
	data, err := s.client.FetchAsset(ctx, token, path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("Skipping profile photo")
		return
	}

	imageType := "JPG"
	if strings.HasSuffix(strings.ToLower(path), ".png") {
		imageType = "PNG"
	}
	name := "profile-photo"
	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
	if pdf.Err() {
		s.logger.Warn().Str("path", path).Msg("Unreadable profile photo, skipping")
		pdf.ClearError()
		return
	}
	pdf.ImageOptions(name, pageWidth-pageMargin-35, 32, 35, 0, false, fpdf.ImageOptions{ImageType: imageType}, 0, "")
}

// sectionTable renders one section heading and its approved items. Rows
// wrap inside their cells; a row that would cross the page break moves to a
// new page together with a repeated header, so nothing gets clipped.
func (s *ExportService) sectionTable(pdf *fpdf.Fpdf, cat models.Category, items []models.Item) {
	if pdf.GetY()+30 > breakAt {
		pdf.AddPage()
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentWidth, 9, cat.Label, "", 1, "L", false, 0, "")

	s.tableHeader(pdf, cat)
	for _, item := range items {
		s.tableRow(pdf, cat, item)
	}
}

func (s *ExportService) tableHeader(pdf *fpdf.Fpdf, cat models.Category) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range cat.Columns {
		pdf.CellFormat(col.Width, 7, col.Header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func (s *ExportService) tableRow(pdf *fpdf.Fpdf, cat models.Category, item models.Item) {
	pdf.SetFont("Helvetica", "", 9)

	// Row height follows the tallest wrapped cell.
	maxLines := 1
	cellLines := make([][]string, len(cat.Columns))
	for i, col := range cat.Columns {
		lines := pdf.SplitText(item.Field(col.Field), col.Width-2)
		if len(lines) == 0 {
			lines = []string{""}
		}
		cellLines[i] = lines
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	rowHeight := float64(maxLines)*lineHeight + 2

	if pdf.GetY()+rowHeight > breakAt {
		pdf.AddPage()
		s.tableHeader(pdf, cat)
		pdf.SetFont("Helvetica", "", 9)
	}

	x := pageMargin
	y := pdf.GetY()
	for i, col := range cat.Columns {
		pdf.Rect(x, y, col.Width, rowHeight, "D")
		pdf.SetXY(x+1, y+1)
		pdf.MultiCell(col.Width-2, lineHeight, strings.Join(cellLines[i], "\n"), "", "L", false)
		x += col.Width
	}
	pdf.SetXY(pageMargin, y+rowHeight)
}

// signatureBlock names the assigned faculty and leaves a signature line.
func (s *ExportService) signatureBlock(pdf *fpdf.Fpdf, rec models.StudentRecord) {
	if pdf.GetY()+40 > breakAt {
		pdf.AddPage()
	}

	pdf.Ln(14)
	facultyName := rec.Faculty.Name
	if facultyName == "" {
		facultyName = rec.AssignedBy.Name
	}

	pdf.SetFont("Helvetica", "", 11)
	if facultyName != "" {
		pdf.CellFormat(contentWidth, 7, fmt.Sprintf("Reviewed and approved by: %s", facultyName), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(contentWidth, 7, "Reviewed and approved by the assigned faculty", "", 1, "L", false, 0, "")
	}
	pdf.Ln(12)
	lineY := pdf.GetY()
	pdf.Line(pageMargin, lineY, pageMargin+70, lineY)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(70, 6, "Faculty Signature", "", 1, "L", false, 0, "")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
