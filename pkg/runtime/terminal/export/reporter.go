package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/race-tools/startlist/pkg/models/domain"
)

// Reporter outputs competition data to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) HandleCompetitions(competitions []domain.Competition) error {
	tmpl := `{{if not .}}No competitions found.
{{end}}{{range .}}[{{.ID}}] {{.Name}} - {{.Location}} ({{.HeldOn.Format "2006-01-02"}})
{{end}}`
	t, err := template.New("competitions").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, competitions)
}

func (c *Reporter) HandleRegistrationReport(report *domain.RegistrationReport) error {
	tmpl := `
{{.CompetitionInfo.Name}} - {{.CompetitionInfo.Location}} ({{.CompetitionInfo.HeldOn.Format "2006-01-02"}})
{{range .RaceGroups}}
=== {{.RaceName}} ===
Special categories:{{range .SpecialCategories}} [{{.Label}}]{{end}}{{if not .SpecialCategories}} none{{end}}
{{range .Participants}}
- {{.LastName}}, {{.FirstName}} ({{.BirthYear}}) {{.Class}}{{if .Club}}, {{.Club}}{{end}}
  start: {{.StartTime.Format "15:04"}}  flags: {{printf "%v" .SpecialCategoryFlags}}
{{end}}
{{end}}
`
	t, err := template.New("registration_report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
