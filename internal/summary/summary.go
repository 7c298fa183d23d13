// Package summary renders the one-page progress summary PDF.
package summary

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/atinyakov/GrowthMindset/internal/models"
)

const (
	// FileName is the suggested download name of the document.
	FileName = "growth_mindset_progress.pdf"
	// ContentType is the MIME type of the document.
	ContentType = "application/pdf"
	// Title is the heading printed at the top of the page.
	Title = "Growth Mindset Progress"
)

// pageHeight of a US Letter page in points; placements below are measured
// from the bottom edge and flipped for fpdf's top-left origin.
const pageHeight = 792

type placement struct {
	x, y  float64
	label string
}

var (
	titleAt    = placement{x: 200, y: 750}
	goalAt     = placement{x: 100, y: 700, label: "Learning Goal: "}
	achievedAt = placement{x: 100, y: 670, label: "Achieved Date: "}
	tipAt      = placement{x: 100, y: 640, label: "Selected Tip: "}
	feedbackAt = placement{x: 100, y: 610, label: "Journey Feedback: "}
)

// Input holds the fields echoed on the summary page.
type Input struct {
	Goal         string
	AchievedDate time.Time
	Tip          string
	Feedback     string
}

// Generate renders in as a single-page PDF. Fields are printed verbatim at
// fixed positions; nothing is validated and overly long text simply runs
// off the page. Only the creation-date metadata varies between calls.
//
// Text uses the core Helvetica font, so it is encoded as cp1252: accented
// Latin letters survive, other runes (Cyrillic, emoji) print as '.'.
func Generate(in Input) ([]byte, error) {
	return generate(in, time.Now())
}

func generate(in Input, created time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(created)
	pdf.SetTitle(Title, false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	text(pdf, titleAt, Title)

	pdf.SetFont("Helvetica", "", 12)
	text(pdf, goalAt, tr(in.Goal))
	text(pdf, achievedAt, in.AchievedDate.Format(models.DateLayout))
	text(pdf, tipAt, tr(in.Tip))
	text(pdf, feedbackAt, tr(in.Feedback))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func text(pdf *fpdf.Fpdf, at placement, value string) {
	pdf.Text(at.x, pageHeight-at.y, at.label+value)
}
