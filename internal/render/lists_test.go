package render

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/projectinsights/internal/adapter/insights/mock"
	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2020, 6, 15, 12, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{
		Repo:       "owner/project",
		LayoutSeed: 1,
		Now: func() time.Time {
			return testNow
		},
	}
}

func testTemplates(t *testing.T) *Templates {
	t.Helper()

	templates, err := NewTemplates()
	require.NoError(t, err)
	return templates
}

func TestIssuesListData(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var issues []app.IssueSummary
	for i := 1; i <= 25; i++ {
		issues = append(issues, app.IssueSummary{
			Number:    i,
			Title:     fmt.Sprintf("issue %d", i),
			URL:       fmt.Sprintf("https://github.com/owner/project/issues/%d", i),
			Comments:  i % 3,
			CreatedAt: testNow.Add(-3 * 24 * time.Hour),
		})
	}
	issues[1].CreatedAt = time.Time{}

	w := NewUntouchedIssuesList(mock.NewMockInsightsClient(ctrl), testTemplates(t), testConfig())
	data := w.Data(issues)

	assert.Equal(t, "Untouched Issues", data.Title)
	assert.Equal(t, "(max. 20 results)", data.Subtitle)
	require.Len(t, data.Issues, maxListedIssues)
	assert.Equal(t, IssueItem{
		Number:   1,
		Title:    "issue 1",
		URL:      "https://github.com/owner/project/issues/1",
		Comments: 1,
		Age:      "3 days",
	}, data.Issues[0])
	assert.Empty(t, data.Issues[1].Age)
}

func TestIssuesListRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		newWidget func(app.InsightsClient, *Templates, Config) *IssuesList
		expect    func(client *mock.MockInsightsClient) *gomock.Call
		wantName  string
		wantTitle string
	}{
		{
			name:      "untouched",
			newWidget: NewUntouchedIssuesList,
			expect: func(client *mock.MockInsightsClient) *gomock.Call {
				return client.EXPECT().UntouchedIssues(gomock.Any())
			},
			wantName:  "untouched-issues",
			wantTitle: "Untouched Issues",
		},
		{
			name:      "inactive",
			newWidget: NewInactiveIssuesList,
			expect: func(client *mock.MockInsightsClient) *gomock.Call {
				return client.EXPECT().InactiveIssues(gomock.Any())
			},
			wantName:  "inactive-issues",
			wantTitle: "Inactive Issues (2 weeks)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockInsightsClient(ctrl)
			tt.expect(client).Return([]app.IssueSummary{
				{Number: 7, Title: "Crash on start", URL: "https://github.com/owner/project/issues/7", Comments: 2},
			}, nil)

			w := tt.newWidget(client, testTemplates(t), testConfig())
			assert.Equal(t, tt.wantName, w.Name())
			assert.Equal(t, tt.wantName, w.ContainerID())

			html, err := w.Render(context.Background())
			require.NoError(t, err)
			assert.Contains(t, string(html), tt.wantTitle)
			assert.Contains(t, string(html), `href="https://github.com/owner/project/issues/7"`)
			assert.Contains(t, string(html), "Crash on start")
			assert.Contains(t, string(html), "2 comments")
		})
	}
}

func TestIssuesListRenderEmpty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockInsightsClient(ctrl)
	client.EXPECT().InactiveIssues(gomock.Any()).Return(nil, nil)

	html, err := NewInactiveIssuesList(client, testTemplates(t), testConfig()).Render(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(html), "No issues.")
}
