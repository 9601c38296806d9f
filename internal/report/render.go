// Package report renders the daily digest document.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"time"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/util"
)

const digestTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; margin: 20px; }
  h2 { color: #333; }
  table { border-collapse: collapse; width: 100%; }
  th { background-color: #4CAF50; color: white; padding: 12px; text-align: left; }
  td { padding: 10px; border-bottom: 1px solid #ddd; }
  tr:hover { background-color: #f5f5f5; }
  a { text-decoration: none; color: #007bff; }
  .free { color: #28a745; font-weight: bold; }
  .paid { color: #ffc107; font-weight: bold; }
</style>
</head>
<body>
<h2>Daily Remote Frontend Jobs ({{.Date}})</h2>
{{if .Rows}}
<p>Found <strong>{{len .Rows}}</strong> remote frontend opportunities today.</p>
<table>
<tr>
  <th>#</th><th>Company / Role</th><th>Link</th><th>Apply Host</th><th>Source</th><th>Apply Status</th>
</tr>
{{range .Rows}}
<tr>
  <td>{{.N}}</td>
  <td><b>{{.Company}}</b><br/><span style="color: #666;">{{.Title}}</span></td>
  <td><a href="{{.URL}}">Apply Now</a></td>
  <td>{{.Host}}</td>
  <td>{{.Source}}</td>
  {{if .Free}}<td class="free">Free</td>{{else}}<td class="paid">Maybe Paid</td>{{end}}
</tr>
{{end}}
</table>
<br/>
<p style="color: #666; font-size: 12px;">
  Tip: jobs marked "Free" can be applied to without subscriptions.
</p>
{{else}}
<p>No jobs found today.</p>
{{end}}
</body>
</html>
`

var tmpl = template.Must(template.New("digest").Parse(digestTemplate))

type row struct {
	N       int
	Company string
	Title   string
	URL     string
	Host    string
	Source  domain.Source
	Free    bool
}

type pageData struct {
	Date string
	Rows []row
}

// Subject is the digest email subject for the given day.
func Subject(now time.Time) string {
	return fmt.Sprintf("Daily Remote Frontend Jobs Digest (%s)", now.Format("2006-01-02"))
}

// Render builds the HTML digest. Free-to-apply jobs come first, then by
// company name; an empty job list still renders a valid document.
func Render(jobs []domain.Job, now time.Time) (string, error) {
	sorted := make([]domain.Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, k int) bool {
		if sorted[i].FreeToApply != sorted[k].FreeToApply {
			return sorted[i].FreeToApply
		}
		return sorted[i].Company < sorted[k].Company
	})

	data := pageData{Date: now.Format("2006-01-02")}
	for i, j := range sorted {
		data.Rows = append(data.Rows, row{
			N:       i + 1,
			Company: j.Company,
			Title:   j.Title,
			URL:     j.URL,
			Host:    util.ApplyHost(j.URL),
			Source:  j.Source,
			Free:    j.FreeToApply,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}
