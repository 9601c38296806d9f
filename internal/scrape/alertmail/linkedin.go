package alertmail

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/scrape/util"
)

type alertJob struct {
	Title    string
	Company  string
	Location string
	URL      string
}

var reJobID = regexp.MustCompile(`/jobs/view/(\d+)`)

// parseJobAlertHTML pulls job cards out of a LinkedIn job-alert email.
// Several anchors point at the same job id (logo, title, CTA), so cards are
// merged by id and the most title-like anchor text wins.
func parseJobAlertHTML(body string) ([]alertJob, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	byID := map[string]*alertJob{}
	var order []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		lh := strings.ToLower(href)
		if !strings.Contains(lh, "linkedin.com") ||
			!(strings.Contains(lh, "/jobs/view/") || strings.Contains(lh, "/comm/jobs/view/")) {
			return
		}

		jobURL := unwrapRedirect(href)
		if jobURL == "" {
			return
		}
		key := jobURL
		if m := reJobID.FindStringSubmatch(jobURL); len(m) == 2 {
			key = m[1]
		}

		j, ok := byID[key]
		if !ok {
			j = &alertJob{URL: jobURL}
			byID[key] = j
			order = append(order, key)
		}

		if t := titleCandidate(a.Text()); t != "" && len(t) > len(j.Title) {
			j.Title = t
		}

		// Company · Location lives in a <p> of the surrounding card.
		card := a.Closest("table")
		if card.Length() == 0 {
			card = a.Parent()
		}
		card.Find("p").Each(func(_ int, p *goquery.Selection) {
			t := util.CleanText(p.Text())
			if j.Company == "" && strings.Contains(t, " · ") {
				parts := strings.SplitN(t, " · ", 2)
				j.Company = strings.TrimSpace(parts[0])
				j.Location = strings.TrimSpace(parts[1])
			}
		})
	})

	out := make([]alertJob, 0, len(byID))
	for _, key := range order {
		j := byID[key]
		if j.Title == "" {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

// titleCandidate cleans anchor text and rejects strings that are clearly not
// job titles (CTAs, badges, footer links).
func titleCandidate(s string) string {
	s = util.CleanText(s)
	for _, badge := range []string{"Actively recruiting", "Easy Apply", "Promoted"} {
		s = strings.TrimSpace(strings.ReplaceAll(s, badge, ""))
	}
	if s == "" {
		return ""
	}
	low := strings.ToLower(s)
	for _, bad := range []string{
		"see all jobs", "view job", "apply", "unsubscribe", "sign in",
		"manage alert", "http://", "https://",
	} {
		if strings.Contains(low, bad) {
			return ""
		}
	}
	if len([]rune(s)) < 4 || len([]rune(s)) > 120 {
		return ""
	}
	return s
}

func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if raw := u.Query().Get("url"); raw != "" {
		if uu, err := url.Parse(raw); err == nil && uu.Host != "" {
			return uu.String()
		}
	}
	if u.Host != "" {
		return u.String()
	}
	return ""
}

func looksLikeJobAlert(from, subj string) bool {
	if strings.Contains(strings.ToLower(from), "jobalerts-noreply") {
		return true
	}
	s := strings.ToLower(subj)
	return strings.Contains(s, "job alert") || strings.Contains(s, "new jobs for")
}
