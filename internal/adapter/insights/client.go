package insights

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/m-zajac/projectinsights/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// MaxIssuesListSize is the number of issues the api returns at most for issue lists.
const MaxIssuesListSize = 20

// Client fetches precomputed analytics from the insights api.
// This struct is an adapter for app.InsightsClient.
//go:generate mockgen -destination mock/insightscli.go -package mock github.com/m-zajac/projectinsights/internal/app InsightsClient
type Client struct {
	doer          HTTPDoer
	baseURL       string
	milestonesURL string
	authToken     string

	responseMaxSize int
}

var _ app.InsightsClient = &Client{}

// NewClient creates new insights api client.
// baseURL is the analytics api root, host and repo locate the milestones resource
// (<host>/<repo>/milestones). authToken is optional.
func NewClient(doer HTTPDoer, baseURL string, host string, repo string, authToken string) *Client {
	return &Client{
		doer:          doer,
		baseURL:       strings.TrimRight(baseURL, "/"),
		milestonesURL: strings.TrimRight(host, "/") + "/" + strings.Trim(repo, "/") + "/milestones",
		authToken:     authToken,

		responseMaxSize: 1024 * 1024 * 10,
	}
}

// IssuesActivity returns monthly counts of opened and closed issues.
func (c *Client) IssuesActivity(ctx context.Context) (app.IssuesActivity, error) {
	var resp activityResponse
	if err := c.getData(ctx, c.baseURL+"/issues_activity", &resp); err != nil {
		return app.IssuesActivity{}, err
	}

	return resp.ToActivity(), nil
}

// UntouchedIssues returns issues with no activity since creation.
func (c *Client) UntouchedIssues(ctx context.Context) ([]app.IssueSummary, error) {
	return c.issues(ctx, c.baseURL+"/untouched_issues")
}

// InactiveIssues returns issues with no activity for the last 2 weeks.
func (c *Client) InactiveIssues(ctx context.Context) ([]app.IssueSummary, error) {
	return c.issues(ctx, c.baseURL+"/inactive_issues")
}

// AvgIssueTime returns monthly average issue resolution time in seconds.
func (c *Client) AvgIssueTime(ctx context.Context) ([]app.TimeSeriesPoint, error) {
	var resp pointsResponse
	if err := c.getData(ctx, c.baseURL+"/avg_issue_time", &resp); err != nil {
		return nil, err
	}

	return resp.ToPoints(), nil
}

// IssuesInvolvement returns users participating in issues, one entry per issue.
func (c *Client) IssuesInvolvement(ctx context.Context) ([]app.Involvement, error) {
	var resp involvementResponse
	if err := c.getData(ctx, c.baseURL+"/issues_involvement", &resp); err != nil {
		return nil, err
	}

	return resp.ToInvolvements(), nil
}

// Milestones returns all milestones of the tracked repository, in api order.
func (c *Client) Milestones(ctx context.Context) ([]app.Milestone, error) {
	var resp milestonesResponse
	if err := c.getData(ctx, c.milestonesURL, &resp); err != nil {
		return nil, err
	}

	return resp.ToMilestones(), nil
}

func (c *Client) issues(ctx context.Context, url string) ([]app.IssueSummary, error) {
	var resp issuesResponse
	if err := c.getData(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp) > MaxIssuesListSize {
		resp = resp[:MaxIssuesListSize]
	}

	return resp.ToIssues(), nil
}

// getData requests url and decodes the `data` field of the response envelope into v.
// Every failure is reported as app.RequestError.
func (c *Client) getData(ctx context.Context, url string, v interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(httpReq)
	if err != nil {
		return app.RequestError(fmt.Sprintf("GET %s: %v", url, err))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return app.RequestError(fmt.Sprintf("GET %s: unmarshalling response: %v", url, err))
	}
	if len(env.Data) == 0 {
		return app.RequestError(fmt.Sprintf("GET %s: response has no data", url))
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return app.RequestError(fmt.Sprintf("GET %s: unmarshalling data: %v", url, err))
	}

	return nil
}

func (c *Client) makeRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	// Read one byte over the limit to tell a complete body from a truncated one.
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > c.responseMaxSize {
		return nil, fmt.Errorf("response body exceeds %d bytes", c.responseMaxSize)
	}

	return b, nil
}
