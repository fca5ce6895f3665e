package insights

import (
	"sort"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/projectinsights/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope wraps every analytics api response.
type envelope struct {
	Data jsoniter.RawMessage `json:"data"`
}

type pointResponse struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type pointsResponse []pointResponse

func (p pointsResponse) ToPoints() []app.TimeSeriesPoint {
	ps := make([]app.TimeSeriesPoint, 0, len(p))
	for _, el := range p {
		ps = append(ps, app.TimeSeriesPoint{
			Period: el.Month,
			Value:  el.Value,
		})
	}

	return ps
}

type activityResponse struct {
	Opened pointsResponse `json:"opened"`
	Closed pointsResponse `json:"closed"`
}

func (a activityResponse) ToActivity() app.IssuesActivity {
	return app.IssuesActivity{
		Opened: a.Opened.ToPoints(),
		Closed: a.Closed.ToPoints(),
	}
}

type userResponse struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

type usersResponse []userResponse

func (u usersResponse) ToUsers() []app.User {
	if len(u) == 0 {
		return nil
	}
	us := make([]app.User, 0, len(u))
	for _, el := range u {
		us = append(us, app.User{
			Login:     el.Login,
			AvatarURL: el.AvatarURL,
		})
	}

	return us
}

type issueResponse struct {
	Number    int           `json:"number"`
	Title     string        `json:"title"`
	HTMLURL   string        `json:"html_url"`
	Comments  int           `json:"comments"`
	CreatedAt time.Time     `json:"created_at"`
	Users     usersResponse `json:"users"`
}

func (i issueResponse) ToIssue() app.IssueSummary {
	return app.IssueSummary{
		Number:    i.Number,
		Title:     i.Title,
		URL:       i.HTMLURL,
		Comments:  i.Comments,
		CreatedAt: i.CreatedAt,
		Users:     i.Users.ToUsers(),
	}
}

type issuesResponse []issueResponse

func (is issuesResponse) ToIssues() []app.IssueSummary {
	ss := make([]app.IssueSummary, 0, len(is))
	for _, el := range is {
		ss = append(ss, el.ToIssue())
	}

	return ss
}

type involvementEntryResponse struct {
	Issue issueResponse `json:"issue"`
	Users usersResponse `json:"users"`
}

type involvementResponse map[string]involvementEntryResponse

// ToInvolvements returns entries ordered by issue id: numerically when all ids are numbers,
// lexically otherwise.
func (r involvementResponse) ToInvolvements() []app.Involvement {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sortIssueIDs(ids)

	is := make([]app.Involvement, 0, len(ids))
	for _, id := range ids {
		el := r[id]
		is = append(is, app.Involvement{
			IssueID: id,
			Issue:   el.Issue.ToIssue(),
			Users:   el.Users.ToUsers(),
		})
	}

	return is
}

// sortIssueIDs orders ids numerically when all of them are integers, lexically otherwise.
func sortIssueIDs(ids []string) {
	nums := make(map[string]int, len(ids))
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			sort.Strings(ids)
			return
		}
		nums[id] = n
	}

	sort.Slice(ids, func(i, j int) bool {
		if nums[ids[i]] != nums[ids[j]] {
			return nums[ids[i]] < nums[ids[j]]
		}
		return ids[i] < ids[j]
	})
}

type milestoneResponse struct {
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	DueOn        *time.Time `json:"due_on"`
	OpenIssues   int        `json:"open_issues"`
	ClosedIssues int        `json:"closed_issues"`
}

type milestonesResponse []milestoneResponse

func (ms milestonesResponse) ToMilestones() []app.Milestone {
	res := make([]app.Milestone, 0, len(ms))
	for _, m := range ms {
		res = append(res, app.Milestone{
			Number:       m.Number,
			Title:        m.Title,
			DueOn:        m.DueOn,
			OpenIssues:   m.OpenIssues,
			ClosedIssues: m.ClosedIssues,
		})
	}

	return res
}
