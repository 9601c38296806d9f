package remoteok

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/domain"
)

const boardHTML = `<!DOCTYPE html>
<html><body>
<table>
<tr class="job">
  <td>
    <a class="preventLink" href="/remote-jobs/100-frontend-engineer"></a>
    <h2>Frontend Engineer</h2>
    <h3>Acme</h3>
    <div class="tags">react javascript</div>
  </td>
</tr>
<tr class="job">
  <td>
    <a class="preventLink" href="https://remoteok.io/remote-jobs/101-vue-dev"></a>
    <h2>Vue Developer</h2>
    <h3>Beta Inc</h3>
  </td>
</tr>
<tr class="job">
  <td>
    <h2>Broken Row Without Link</h2>
    <h3>Gamma</h3>
  </td>
</tr>
</table>
</body></html>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(boardHTML))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL}, nil)
	res, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Postings, 2)
	assert.Equal(t, domain.SourceRemoteOK, res.Source)

	first := res.Postings[0]
	assert.Equal(t, "Frontend Engineer", first.Title)
	assert.Equal(t, "Acme", first.Company)
	// relative hrefs resolve against the board origin
	assert.Equal(t, "https://remoteok.io/remote-jobs/100-frontend-engineer", first.URL)
	assert.Contains(t, first.Snippet, "react")

	assert.Equal(t, "https://remoteok.io/remote-jobs/101-vue-dev", res.Postings[1].URL)
}

func TestFetchRespectsCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(boardHTML))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL, Max: 1}, nil)
	res, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Postings, 1)
}

func TestFetchNonHTMLBodyYieldsNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"json"}`))
	}))
	defer srv.Close()

	s := New(Config{BaseURL: srv.URL}, nil)
	res, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Postings)
}
