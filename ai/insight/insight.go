package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"warmsync.app/warmsync/model"
)

// Generator produces the natural-language monthly summary. Optional: the
// report pipeline works without it when no API key is configured.
type Generator struct {
	g *genkit.Genkit
}

func NewGenerator(ctx context.Context, apiKey string) *Generator {
	g := genkit.Init(ctx,
		genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: apiKey}),
		genkit.WithDefaultModel("googleai/gemini-2.5-flash"),
	)
	return &Generator{g: g}
}

// MonthlySummary asks the model for an encouraging recap of the month plus
// a short forwardable email draft.
func (gen *Generator) MonthlySummary(ctx context.Context, report *model.MonthlyReport) (string, error) {
	resp, err := genkit.Generate(ctx, gen.g, ai.WithPrompt(BuildPrompt(report)))
	if err != nil {
		return "", fmt.Errorf("generate monthly summary: %w", err)
	}
	return resp.Text(), nil
}

// BuildPrompt renders the report as a compact text block to keep token
// usage down, then wraps it in the analysis instructions.
func BuildPrompt(report *model.MonthlyReport) string {
	var lines []string
	for _, s := range report.Shifts {
		notes := s.Notes
		if notes == "" {
			notes = "No notes"
		}
		lines = append(lines, fmt.Sprintf("- %s: %gh (%s)", s.Date, s.TotalHours, notes))
	}

	summary := fmt.Sprintf(`Month: %s
Total Hours: %g
Hourly Rate: $%g
Total Pay: $%d

Shift Data (Date, Hours, Notes):
%s`, report.Month, report.TotalHours, report.HourlyRate, report.TotalPay, strings.Join(lines, "\n"))

	return fmt.Sprintf(`Analyze this monthly timesheet data.
1. Provide a brief, encouraging summary of the work month.
2. Point out any patterns (e.g. lots of overtime, consistent schedule, or irregular hours).
3. Draft a very short, polite email content (2-3 sentences) that the employee can copy-paste to send this report to their manager.

Keep the tone professional yet warm and energetic. Use Markdown for formatting.
Data:
%s`, summary)
}
