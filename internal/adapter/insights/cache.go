package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/projectinsights/internal/app"
)

// CachedClient wraps insights client with caching layer.
// Only raw api payloads are cached; callers build their view models on every call
// and must not modify returned slices.
type CachedClient struct {
	client app.InsightsClient
	cache  *lru.Cache
	ttl    time.Duration
	now    func() time.Time
}

var _ app.InsightsClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.InsightsClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}

	return &CachedClient{
		client: client,
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// IssuesActivity returns monthly counts of opened and closed issues.
func (c *CachedClient) IssuesActivity(ctx context.Context) (app.IssuesActivity, error) {
	return cached(c, "issues_activity", func() (app.IssuesActivity, error) {
		return c.client.IssuesActivity(ctx)
	})
}

// UntouchedIssues returns issues with no activity since creation.
func (c *CachedClient) UntouchedIssues(ctx context.Context) ([]app.IssueSummary, error) {
	return cached(c, "untouched_issues", func() ([]app.IssueSummary, error) {
		return c.client.UntouchedIssues(ctx)
	})
}

// InactiveIssues returns issues with no activity for the last 2 weeks.
func (c *CachedClient) InactiveIssues(ctx context.Context) ([]app.IssueSummary, error) {
	return cached(c, "inactive_issues", func() ([]app.IssueSummary, error) {
		return c.client.InactiveIssues(ctx)
	})
}

// AvgIssueTime returns monthly average issue resolution time in seconds.
func (c *CachedClient) AvgIssueTime(ctx context.Context) ([]app.TimeSeriesPoint, error) {
	return cached(c, "avg_issue_time", func() ([]app.TimeSeriesPoint, error) {
		return c.client.AvgIssueTime(ctx)
	})
}

// IssuesInvolvement returns users participating in issues.
func (c *CachedClient) IssuesInvolvement(ctx context.Context) ([]app.Involvement, error) {
	return cached(c, "issues_involvement", func() ([]app.Involvement, error) {
		return c.client.IssuesInvolvement(ctx)
	})
}

// Milestones returns repository milestones.
func (c *CachedClient) Milestones(ctx context.Context) ([]app.Milestone, error) {
	return cached(c, "milestones", func() ([]app.Milestone, error) {
		return c.client.Milestones(ctx)
	})
}

// cached returns entry stored under key if it's younger than ttl, otherwise calls fetch
// and stores its result. Errors are never cached.
func cached[T any](c *CachedClient, key string, fetch func() (T, error)) (T, error) {
	if val, ok := c.cache.Get(key); ok {
		entry := val.(cacheEntry)
		if entry.created.Add(c.ttl).After(c.now()) {
			return entry.data.(T), nil
		}
	}

	data, err := fetch()
	if err != nil {
		return data, err
	}

	c.cache.Add(key, cacheEntry{
		created: c.now(),
		data:    data,
	})

	return data, nil
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}
