package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/projectinsights/internal/adapter/insights/mock"
	"github.com/m-zajac/projectinsights/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedClientMilestones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cacheSize     int
		calls         int
		callsInterval time.Duration
		ttl           time.Duration
		wantErr       bool
		wantCalls     int
	}{
		{
			name:      "invalid cache size",
			cacheSize: 0,
			wantErr:   true,
		},
		{
			name:          "calls within ttl",
			cacheSize:     1,
			calls:         4,
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantCalls:     1,
		},
		{
			name:          "calls with expiring ttl",
			cacheSize:     1,
			calls:         4,
			callsInterval: 5 * time.Millisecond,
			ttl:           time.Millisecond,
			wantCalls:     4,
		},
	}

	milestonesResponse := []app.Milestone{
		{Number: 1, Title: "v1", OpenIssues: 1, ClosedIssues: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var clientCalls int

			client := mock.NewMockInsightsClient(ctrl)
			client.EXPECT().
				Milestones(gomock.Any()).
				DoAndReturn(func(ctx context.Context) ([]app.Milestone, error) {
					clientCalls++
					return milestonesResponse, nil
				}).
				AnyTimes()

			cachedClient, err := NewCachedClient(client, tt.cacheSize, tt.ttl)
			assert.Equal(t, tt.wantErr, err != nil)
			if err != nil {
				return
			}

			for i := 0; i < tt.calls; i++ {
				milestones, err := cachedClient.Milestones(context.Background())
				require.NoError(t, err)
				require.Equal(t, milestonesResponse, milestones)
				time.Sleep(tt.callsInterval)
			}

			assert.Equal(t, tt.wantCalls, clientCalls)
		})
	}
}

func TestCachedClientKeepsEndpointsApart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	untouched := []app.IssueSummary{{Number: 1, Title: "untouched"}}
	inactive := []app.IssueSummary{{Number: 2, Title: "inactive"}}

	client := mock.NewMockInsightsClient(ctrl)
	client.EXPECT().UntouchedIssues(gomock.Any()).Return(untouched, nil).Times(1)
	client.EXPECT().InactiveIssues(gomock.Any()).Return(inactive, nil).Times(1)

	cachedClient, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		got, err := cachedClient.UntouchedIssues(context.Background())
		require.NoError(t, err)
		assert.Equal(t, untouched, got)

		got, err = cachedClient.InactiveIssues(context.Background())
		require.NoError(t, err)
		assert.Equal(t, inactive, got)
	}
}

func TestCachedClientDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activity := app.IssuesActivity{
		Opened: []app.TimeSeriesPoint{{Period: "Jan", Value: 1}},
	}

	client := mock.NewMockInsightsClient(ctrl)
	gomock.InOrder(
		client.EXPECT().IssuesActivity(gomock.Any()).Return(app.IssuesActivity{}, app.RequestError("status 500")),
		client.EXPECT().IssuesActivity(gomock.Any()).Return(activity, nil),
	)

	cachedClient, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	_, err = cachedClient.IssuesActivity(context.Background())
	require.True(t, app.IsRequestError(err))

	got, err := cachedClient.IssuesActivity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, activity, got)

	got, err = cachedClient.IssuesActivity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, activity, got)
}

func TestCachedClientPassesErrorsThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("boom")
	client := mock.NewMockInsightsClient(ctrl)
	client.EXPECT().IssuesInvolvement(gomock.Any()).Return(nil, wantErr)
	client.EXPECT().AvgIssueTime(gomock.Any()).Return(nil, wantErr)

	cachedClient, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	_, err = cachedClient.IssuesInvolvement(context.Background())
	assert.Equal(t, wantErr, err)
	_, err = cachedClient.AvgIssueTime(context.Background())
	assert.Equal(t, wantErr, err)
}
