package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-pdf/fpdf"

	"redditpulse/internal/models"
)

var recommendations = []string{
	"Monitor spikes in negative sentiment to identify potential PR crises early.",
	"Leverage positive discussions by engaging with supportive communities.",
	"Consider deeper analysis by industry or region for targeted strategies.",
	"Export the dataset regularly for offline review and archiving.",
}

// RenderPDF assembles the multi-section document from the snapshot and
// writes it to w. Chart images live in a temp dir that is removed on every
// exit path. Optional sections that cannot render are skipped; only a
// failure of the document itself is a RenderError.
func RenderPDF(snapshot *models.ReportSnapshot, w io.Writer) error {
	tempDir, err := os.MkdirTemp("", "redditpulse-charts-")
	if err != nil {
		return &models.RenderError{Section: "setup", Err: err}
	}
	defer os.RemoveAll(tempDir)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	addHeader(pdf, snapshot)
	addMetrics(pdf, snapshot)
	addCharts(pdf, snapshot, tempDir)
	addRecommendations(pdf)
	addFooter(pdf)

	if pdf.Err() {
		return &models.RenderError{Section: "document", Err: pdf.Error()}
	}
	if err := pdf.Output(w); err != nil {
		return &models.RenderError{Section: "output", Err: err}
	}
	return nil
}

func addHeader(pdf *fpdf.Fpdf, snapshot *models.ReportSnapshot) {
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(31, 78, 121)
	pdf.CellFormat(0, 15, "Reddit Analysis Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "I", 12)
	pdf.SetTextColor(128, 128, 128)
	generated := "Generated on " + snapshot.Metadata.AnalysisDate.Format("2006-01-02 15:04")
	pdf.CellFormat(0, 8, generated, "", 1, "C", false, 0, "")
	pdf.Ln(10)
}

func addMetrics(pdf *fpdf.Fpdf, snapshot *models.ReportSnapshot) {
	addSectionTitle(pdf, "Key Metrics")

	dist := snapshot.Metrics.Distribution
	rows := [][2]string{
		{"Search Term", snapshot.Metadata.SearchTerm},
		{"Total Posts", fmt.Sprintf("%d", snapshot.Metadata.TotalPosts)},
		{"Avg Sentiment", fmt.Sprintf("%.2f", snapshot.Metrics.AverageSentiment)},
		{"Positive Posts", formatLabelCount(dist[models.LabelPositive])},
		{"Negative Posts", formatLabelCount(dist[models.LabelNegative])},
		{"Neutral Posts", formatLabelCount(dist[models.LabelNeutral])},
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}

func addCharts(pdf *fpdf.Fpdf, snapshot *models.ReportSnapshot, tempDir string) {
	if path, err := renderDistributionChart(snapshot, tempDir); err != nil {
		slog.Warn("[ReportRenderer] Skipping distribution chart",
			slog.String("error", err.Error()))
	} else {
		embedChart(pdf, path)
	}

	if len(snapshot.Daily) > 0 {
		if path, err := renderTrendChart(snapshot.Daily, tempDir); err != nil {
			slog.Warn("[ReportRenderer] Skipping trend chart",
				slog.String("error", err.Error()))
		} else {
			embedChart(pdf, path)
		}
	}

	if len(snapshot.Categories) > 0 {
		if path, err := renderCategoryChart(snapshot.Categories, tempDir); err != nil {
			slog.Warn("[ReportRenderer] Skipping category chart",
				slog.String("error", err.Error()))
		} else {
			embedChart(pdf, path)
		}
	}
}

func embedChart(pdf *fpdf.Fpdf, path string) {
	pdf.ImageOptions(path, 25, 0, 160, 0, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.Ln(8)
}

func addRecommendations(pdf *fpdf.Fpdf) {
	addSectionTitle(pdf, "Insights & Recommendations")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	for _, line := range recommendations {
		pdf.MultiCell(usable, 6, "- "+line, "", "L", false)
		pdf.Ln(2)
	}
	pdf.Ln(5)
}

func addFooter(pdf *fpdf.Fpdf) {
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5, "Generated by Reddit Sentiment Dashboard", "", 0, "C", false, 0, "")
}

func addSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(31, 78, 121)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)
}

func formatLabelCount(lc models.LabelCount) string {
	return fmt.Sprintf("%d (%.1f%%)", lc.Count, lc.Percent)
}
