package domain

// Source identifies the job board a posting came from.
type Source string

const (
	SourceArbeitnow Source = "arbeitnow"
	SourceRemotive  Source = "remotive"
	SourceRemoteOK  Source = "remoteok"
	SourceJSJobbs   Source = "jsjobbs"
	SourceWWR       Source = "weworkremotely"
	SourceAlertMail Source = "alertmail"
)

// RawPosting is what a fetcher pulled out of one board entry, before any
// validation. Fields other than Source may be empty.
type RawPosting struct {
	Title   string
	Company string
	URL     string
	Snippet string
	Source  Source
}

// Job is a normalized posting. Built by the normalizer, tagged by the
// free-to-apply classifier, discarded once the digest is rendered.
type Job struct {
	Title       string
	Company     string
	URL         string
	Source      Source
	Snippet     string
	FreeToApply bool
}
