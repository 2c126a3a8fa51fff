// Package pdf renders exam convocations as single-page A4 documents.
package pdf

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// Default header lines
const (
	DefaultInstitution = "Université Ibn Zohr"
	DefaultTitle       = "Convocation d'Examen"
)

const (
	leftMargin  = 80.0
	lineHeight  = 20.0
	headerTop   = 80.0
	subtitleTop = 110.0
	bodyTop     = 160.0
)

// Convocation holds the printed fields of a convocation
type Convocation struct {
	StudentName string
	CNE         string
	CodeApoge   string
	StreamName  string
	SubjectName string
	RoomName    string
	TableNumber int
	// StartsAt is printed as dd/mm/yyyy à HH:MM.
	StartsAt time.Time
}

// Renderer draws convocations with a fixed header
type Renderer struct {
	Institution string
	Title       string
	// Compress toggles stream compression; tests turn it off to read the text back.
	Compress bool
}

// NewRenderer returns a Renderer with compression enabled. Empty header
// values fall back to the defaults.
func NewRenderer(institution, title string) *Renderer {
	if institution == "" {
		institution = DefaultInstitution
	}
	if title == "" {
		title = DefaultTitle
	}
	return &Renderer{Institution: institution, Title: title, Compress: true}
}

// Render writes c as a PDF document to w
func (r *Renderer) Render(w io.Writer, c Convocation) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetCompression(r.Compress)
	doc.SetTitle(r.Title, true)
	doc.SetCreator("examdesk", false)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := doc.GetPageSize()

	doc.SetFont("Helvetica", "B", 18)
	centered(doc, pageWidth, headerTop, tr(r.Institution))
	doc.SetFont("Helvetica", "", 14)
	centered(doc, pageWidth, subtitleTop, tr(r.Title))

	doc.SetFont("Helvetica", "", 12)
	y := bodyTop
	for _, line := range lines(c) {
		doc.Text(leftMargin, y, tr(line))
		y += lineHeight
	}

	if err := doc.Error(); err != nil {
		return fmt.Errorf("error building convocation pdf: %w", err)
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("error writing convocation pdf: %w", err)
	}
	return nil
}

func centered(doc *fpdf.Fpdf, pageWidth, y float64, text string) {
	doc.Text((pageWidth-doc.GetStringWidth(text))/2, y, text)
}

func lines(c Convocation) []string {
	return []string{
		"Nom complet : " + c.StudentName,
		"CNE : " + orDash(c.CNE),
		"Code Apogée : " + orDash(c.CodeApoge),
		"Filière : " + c.StreamName,
		"Matière : " + c.SubjectName,
		"Salle : " + c.RoomName,
		"Table : " + strconv.Itoa(c.TableNumber),
		"Date : " + c.StartsAt.Format("02/01/2006") + " à " + c.StartsAt.Format("15:04"),
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
