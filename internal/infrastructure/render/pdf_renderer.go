package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/ignatzorin/sponsorship-backend/internal/domain/entity"
	"github.com/ignatzorin/sponsorship-backend/internal/domain/valueobject"
)

const (
	pageMargin   = 50.0
	titleSize    = 18.0
	titleLeading = 22.0
	bodySize     = 12.0
	bodyLeading  = 16.0
	notSet       = "TBD"
)

// PDFRenderer раскладывает предложение на страницах формата Letter.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderProposal(proposal *entity.Proposal) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle(proposal.Title, true)
	pdf.AddPage()

	// Встроенные шрифты работают в cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	write := func(text string, size, leading float64) {
		pdf.SetFont("Helvetica", "", size)
		for _, line := range strings.Split(text, "\n") {
			pdf.MultiCell(0, leading, tr(line), "", "L", false)
		}
	}
	gap := func() {
		pdf.Ln(bodyLeading)
	}

	write(proposal.Title, titleSize, titleLeading)
	write(proposal.Description, bodySize, bodyLeading)
	write("Date: "+orDefault(proposal.Date), bodySize, bodyLeading)
	write("Location: "+orDefault(proposal.Location), bodySize, bodyLeading)
	gap()

	write("Audience Summary:", bodySize, bodyLeading)
	write(proposal.AudienceSummary, bodySize, bodyLeading)
	gap()

	write("Value Proposition:", bodySize, bodyLeading)
	for _, point := range proposal.ValueProposition {
		write("- "+point, bodySize, bodyLeading)
	}
	gap()

	write("Tiers:", bodySize, bodyLeading)
	for _, tier := range proposal.Tiers {
		write(fmt.Sprintf("%s - %s", tier.Name, valueobject.FormatUSD(tier.Price)), bodySize, bodyLeading)
		for _, benefit := range tier.Benefits {
			write("  • "+benefit, bodySize, bodyLeading)
		}
		gap()
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render: не удалось сформировать pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: не удалось записать pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orDefault(value *string) string {
	if value == nil || *value == "" {
		return notSet
	}
	return *value
}
