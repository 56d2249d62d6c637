// report/pdf.go - PDF rendering of the performance report
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	headerColorR = 0x1F
	headerColorG = 0x3C
	headerColorB = 0x88
)

// RenderPDF draws the aggregated report as an A4 PDF and returns the
// document bytes, ready to be served with an attachment disposition.
func RenderPDF(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(headerColorR, headerColorG, headerColorB)
	pdf.CellFormat(0, 10, tr(pdf, "Escape Room da Segurança do Paciente"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, tr(pdf, "Relatório de Desempenho do Usuário"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Data/Hora: "+time.Now().Format("02/01/2006 15:04:05"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(pdf, "Usuário: "+data.Username), "", 1, "C", false, 0, "")

	pdf.SetDrawColor(128, 128, 128)
	pdf.Line(15, pdf.GetY()+2, 195, pdf.GetY()+2)
	pdf.Ln(8)

	// Progress block
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(headerColorR, headerColorG, headerColorB)
	pdf.CellFormat(0, 8, tr(pdf, "Progresso do Usuário"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)

	for _, st := range data.Stations {
		line := fmt.Sprintf("Estação %d: %d pontos, Tempo: %ds", st.StationID, st.Score, st.TimeSpent)
		pdf.CellFormat(0, 6, tr(pdf, line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	totalTime := data.TotalTimeSeconds
	pdf.CellFormat(0, 6, fmt.Sprintf("Pontuação Total: %d", data.TotalScore), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Tempo Total: %dh %dm", totalTime/3600, (totalTime%3600)/60), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(pdf, fmt.Sprintf("Pontuação Média: %.2f%%", data.AveragePercent)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(pdf, "Conquista: "+data.AchievementTier), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Evaluation block
	if data.Evaluation != nil {
		ev := data.Evaluation

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(headerColorR, headerColorG, headerColorB)
		pdf.CellFormat(0, 8, tr(pdf, "Avaliação da Plataforma"), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)

		pdf.CellFormat(0, 6, tr(pdf, "Tipo de participante: "+ev.ParticipantType), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(pdf, "Tipo de participação: "+ev.ParticipationType), "", 1, "L", false, 0, "")

		if len(ev.Team) > 0 {
			pdf.CellFormat(0, 6, "Equipe:", "", 1, "L", false, 0, "")
			for _, member := range ev.Team {
				pdf.CellFormat(0, 6, tr(pdf, "  - "+member), "", 1, "L", false, 0, "")
			}
		}
		pdf.Ln(2)

		pdf.CellFormat(0, 6, fmt.Sprintf("Q1 - Facilidade de uso: %d", ev.Q1), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Q2 - Aprendizado: %d", ev.Q2), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Q3 - Design/Interface: %d", ev.Q3), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(pdf, fmt.Sprintf("Q4 - Recomendação: %d", ev.Q4)), "", 1, "L", false, 0, "")
		pdf.Ln(3)

		if ev.Q5 != "" {
			drawParagraph(pdf, "Pontos fortes:", ev.Q5)
		}
		if ev.Q6 != "" {
			drawParagraph(pdf, "Melhorias sugeridas:", ev.Q6)
		}
	}

	// Footer
	pdf.SetY(-25)
	pdf.SetDrawColor(128, 128, 128)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(headerColorR, headerColorG, headerColorB)
	pdf.CellFormat(0, 5, tr(pdf, "Comentários e sugestões: Prof. Dr. Silvio Cesar da Conceição"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 5, "E-mail: silvioenfermeiro73@gmail.com", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// drawParagraph renders a titled free-text block on a light background.
func drawParagraph(pdf *gofpdf.Fpdf, title, body string) {
	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr(pdf, title), "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(pdf, body), "", "L", true)
	pdf.Ln(3)
}

// tr maps UTF-8 strings to the cp1252 encoding of the core fonts so the
// Portuguese text renders correctly.
func tr(pdf *gofpdf.Fpdf, s string) string {
	translator := pdf.UnicodeTranslatorFromDescriptor("")
	return translator(s)
}
