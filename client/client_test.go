package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, "secret")
}

func TestLanguagesFollowsPages(t *testing.T) {
	var (
		mu    sync.Mutex
		pages []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/languages", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		page := r.URL.Query().Get("page")
		mu.Lock()
		pages = append(pages, page)
		mu.Unlock()

		switch page {
		case "1":
			fmt.Fprint(w, `{"api_version":"2.0","method":"get","fetched":"now","data":{"has_more":true,"objects":[
				{"id":1,"key":"CPP20","common_name":"C++"},{"id":2,"key":"PY3","common_name":"Python"}]}}`)
		default:
			fmt.Fprint(w, `{"api_version":"2.0","method":"get","fetched":"now","data":{"has_more":false,"objects":[
				{"id":3,"key":"PYPY3","common_name":"PyPy"}]}}`)
		}
	})

	langs, err := c.Languages(context.Background())
	require.NoError(t, err)
	mu.Lock()
	assert.Equal(t, []string{"1", "2"}, pages)
	mu.Unlock()
	require.Len(t, langs, 3)
	assert.Equal(t, "PyPy", langs[2].CommonName)

	id, err := LanguageID(langs, "cpp20")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = LanguageID(langs, "brainfuck")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestLanguagesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"api_version":"2.0","method":"get","fetched":"now","error":{"code":404,"message":"page not found"}}`)
	})

	_, err := c.Languages(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
	assert.Contains(t, err.Error(), "page not found")
}

func TestSubmissionEmptyEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"api_version":"2.0","method":"get","fetched":"now"}`)
	})

	_, err := c.Submission(context.Background(), "1")
	assert.ErrorIs(t, err, ErrEmptyEnvelope)
}

func TestSubmissionNonJSONStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})

	_, err := c.Submission(context.Background(), "1")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
	assert.Contains(t, err.Error(), "Error 403")
}

func TestSubmissionDecodesCases(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/submission/4998420", r.URL.Path)
		fmt.Fprint(w, `{"api_version":"2.0","method":"get","fetched":"now","data":{"object":{
			"id":4998420,"problem":"aplusb","user":"me","status":"D","result":"AC",
			"time":0.5,"memory":9876,"points":10,"case_points":10,"case_total":10,
			"cases":[
				{"type":"case","case_id":1,"status":"AC","time":0.1,"memory":2048,"points":5,"total":5},
				{"type":"batch","batch_id":1,"points":5,"total":5,"cases":[
					{"type":"case","case_id":2,"status":"AC","time":0.2,"memory":2048,"points":1,"total":1}]}]}}}`)
	})

	sub, err := c.Submission(context.Background(), "4998420")
	require.NoError(t, err)
	assert.True(t, sub.Done())
	require.Len(t, sub.Cases, 2)
	assert.NotNil(t, sub.Cases[0].Case)
	require.NotNil(t, sub.Cases[1].Batch)
	assert.Len(t, sub.Cases[1].Batch.Cases, 1)

	out := sub.Outcome()
	assert.Equal(t, "AC", out.Result)
	require.NotNil(t, out.Memory)
	assert.Equal(t, 9876.0, *out.Memory)
	assert.Equal(t, 10.0, out.CaseTotal)
}

func TestSubmissionPending(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"api_version":"2.0","method":"get","fetched":"now","data":{"object":{
			"id":1,"status":"G","result":null,"time":null,"memory":null,"case_points":0,"case_total":0,"cases":[]}}}`)
	})

	sub, err := c.Submission(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, sub.Done())
	assert.Nil(t, sub.Time)
	assert.Empty(t, sub.Cases)
}

func TestSubmitReadsRedirect(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/problem/aplusb/submit", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(body))
		assert.NoError(t, err)
		assert.Equal(t, "aplusb", form.Get("problem"))
		assert.Equal(t, "print(1)", form.Get("source"))
		assert.Equal(t, "7", form.Get("language"))

		http.Redirect(w, r, "/submission/123456", http.StatusFound)
	})

	id, err := c.Submit(context.Background(), "aplusb", "print(1)", 7)
	require.NoError(t, err)
	assert.Equal(t, "123456", id)
}

func TestSubmitStatusErrors(t *testing.T) {
	for code, want := range map[int]string{
		http.StatusBadRequest:   "Error 400",
		http.StatusUnauthorized: "Error 401",
		http.StatusNotFound:     "the problem does not exist",
		http.StatusTeapot:       "Code 418, unknown network error",
	} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})
		_, err := c.Submit(context.Background(), "aplusb", "x", 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), want)
	}
}

func TestSubmitMissingLocation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	})

	_, err := c.Submit(context.Background(), "aplusb", "x", 1)
	assert.True(t, errors.Is(err, ErrNoRedirect))
}
