package app

import (
	"context"
	"time"
)

// InsightsClient returns precomputed project analytics.
type InsightsClient interface {
	IssuesActivity(ctx context.Context) (IssuesActivity, error)
	UntouchedIssues(ctx context.Context) ([]IssueSummary, error)
	InactiveIssues(ctx context.Context) ([]IssueSummary, error)
	AvgIssueTime(ctx context.Context) ([]TimeSeriesPoint, error)
	IssuesInvolvement(ctx context.Context) ([]Involvement, error)
	Milestones(ctx context.Context) ([]Milestone, error)
}

// TimeSeriesPoint is a single value of a monthly series.
type TimeSeriesPoint struct {
	Period string
	Value  float64
}

// IssuesActivity holds monthly counts of opened and closed issues.
type IssuesActivity struct {
	Opened []TimeSeriesPoint
	Closed []TimeSeriesPoint
}

// User entity
type User struct {
	Login     string
	AvatarURL string
}

// IssueSummary entity
type IssueSummary struct {
	Number    int
	Title     string
	URL       string
	Comments  int
	CreatedAt time.Time
	Users     []User
}

// Involvement lists users participating in a single issue.
type Involvement struct {
	IssueID string
	Issue   IssueSummary
	Users   []User
}

// Milestone entity. DueOn is nil when milestone has no due date.
type Milestone struct {
	Number       int
	Title        string
	DueOn        *time.Time
	OpenIssues   int
	ClosedIssues int
}
