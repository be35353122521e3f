package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/dmoj-submit/dmoj-submit/internal/grading"
	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"go.uber.org/zap"
)

// Submission is a snapshot of /api/v2/submission/<id>. Result stays empty
// until grading finishes.
type Submission struct {
	ID         int          `json:"id"`
	Problem    string       `json:"problem"`
	User       string       `json:"user"`
	Date       string       `json:"date"`
	Time       *float64     `json:"time"`
	Memory     *float64     `json:"memory"`
	Points     *float64     `json:"points"`
	Language   string       `json:"language"`
	Status     string       `json:"status"`
	Result     string       `json:"result"`
	CasePoints float64      `json:"case_points"`
	CaseTotal  float64      `json:"case_total"`
	Cases      grading.Tree `json:"cases"`
}

func (s *Submission) Done() bool {
	return s.Result != ""
}

func (s *Submission) Outcome() grading.Outcome {
	return grading.Outcome{
		Result:     s.Result,
		Time:       s.Time,
		Memory:     s.Memory,
		CasePoints: s.CasePoints,
		CaseTotal:  s.CaseTotal,
	}
}

// Submission fetches the current state of a submission.
func (c *Client) Submission(ctx context.Context, id string) (*Submission, error) {
	var res Response[SingleData[Submission]]
	if err := c.getAPI(ctx, "/api/v2/submission/"+url.PathEscape(id), nil, &res); err != nil {
		return nil, err
	}
	data, err := unwrap(&res)
	if err != nil {
		return nil, err
	}
	return &data.Object, nil
}

// Submit posts source to a problem and returns the new submission's id. The
// judge answers a successful submission with a redirect to its page, whose
// last path segment is the id.
func (c *Client) Submit(ctx context.Context, problem, source string, languageID int) (string, error) {
	form := url.Values{
		"problem":  {problem},
		"source":   {source},
		"language": {strconv.Itoa(languageID)},
	}
	endpoint := fmt.Sprintf("%s/problem/%s/submit", c.baseURL, url.PathEscape(problem))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.authorize(req)

	// stop at the redirect; its target is what we are after
	hc := *c.http
	hc.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	logger.Info("submitting", zap.String("url", endpoint))
	res, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusFound {
		return "", &StatusError{Code: res.StatusCode}
	}

	location, err := res.Location()
	if err != nil {
		return "", ErrNoRedirect
	}
	logger.Info("submission url", zap.String("url", location.String()))

	id := path.Base(strings.TrimRight(location.Path, "/"))
	if id == "" || id == "." || id == "/" {
		return "", fmt.Errorf("could not determine submission id from %s", location)
	}
	logger.Info("submission id", zap.String("id", id))
	return id, nil
}
