package feeds

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteOKSkipsLegalPreamble(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"legal":"API terms apply"},
			{"position":"Python Developer","company":"Acme","location":"Remote","url":"https://r.ok/1","tags":["python","django"],"description":"Build APIs"},
			{"position":"Rust Developer","company":"Oxide","location":"Remote","url":"https://r.ok/2","tags":["rust"],"description":"Systems work"}
		]`)
	}))
	defer srv.Close()

	f := NewRemoteOK(nil)
	f.BaseURL = srv.URL

	jobs, err := f.Fetch(context.Background(), []string{"python"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Python Developer", jobs[0].Title)
	assert.Equal(t, "RemoteOK", jobs[0].Source)
}

func TestRemotiveMergesTypeAndCategoryIntoTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"jobs":[
			{"title":"React Engineer","company_name":"PixelCraft","candidate_required_location":"",
			 "url":"https://rm.tv/1","job_type":"full_time","category":"Software Development",
			 "tags":["react","typescript"],"description":"Frontend work"}
		]}`)
	}))
	defer srv.Close()

	f := NewRemotive(nil)
	f.BaseURL = srv.URL

	jobs, err := f.Fetch(context.Background(), []string{"react"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Remote", jobs[0].Location, "empty location defaults to Remote")
	assert.Contains(t, jobs[0].Tags, "full_time")
	assert.Contains(t, jobs[0].Tags, "react")
}

func TestArbeitnowPaginates(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)
		fmt.Fprintf(w, `{"data":[
			{"title":"Go Developer p%s","company_name":"Streamly","location":"Berlin",
			 "url":"https://an.io/%s","tags":["golang"],"description":"Go services"}
		]}`, page, page)
	}))
	defer srv.Close()

	f := NewArbeitnow(nil, 2)
	f.BaseURL = srv.URL

	jobs, err := f.Fetch(context.Background(), []string{"golang"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, pages)
	assert.Len(t, jobs, 2)
}

func TestWeWorkRemotelyParsesListings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "term=")
		fmt.Fprint(w, `<html><body><section class="jobs"><ul>
			<li><a href="/remote-jobs/acme-python-engineer">
				<span class="title">Python Engineer</span>
				<span class="company">Acme</span>
				<span class="region">Anywhere in the World</span>
			</a><span class="tag">python</span></li>
			<li><a href="/promo/upgrade"><span class="title">View all jobs</span></a></li>
		</ul></section></body></html>`)
	}))
	defer srv.Close()

	f := NewWeWorkRemotely(nil)
	f.BaseURL = srv.URL

	jobs, err := f.Fetch(context.Background(), []string{"python"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Python Engineer", jobs[0].Title)
	assert.Equal(t, srv.URL+"/remote-jobs/acme-python-engineer", jobs[0].URL)
	assert.Equal(t, []string{"python"}, jobs[0].Tags)
}

func TestWeWorkRemotelyEmptySkillsSkipsRequest(t *testing.T) {
	f := NewWeWorkRemotely(nil)
	f.BaseURL = "http://127.0.0.1:1" // would fail if dialed
	jobs, err := f.Fetch(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestAdapterSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewRemotive(nil)
	f.BaseURL = srv.URL
	_, err := f.Fetch(context.Background(), []string{"python"})
	assert.Error(t, err)
}
