package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvolvementResponseToInvolvementsOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{
			name: "numeric ids",
			ids:  []string{"10", "9", "100", "2", "02"},
			want: []string{"02", "2", "9", "10", "100"},
		},
		{
			name: "mixed ids are ordered lexically",
			ids:  []string{"10", "9", "1a", "2", "x", "100", "3b"},
			want: []string{"10", "100", "1a", "2", "3b", "9", "x"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := make(involvementResponse, len(tt.ids))
			for _, id := range tt.ids {
				resp[id] = involvementEntryResponse{}
			}

			for i := 0; i < 50; i++ {
				got := make([]string, 0, len(tt.ids))
				for _, inv := range resp.ToInvolvements() {
					got = append(got, inv.IssueID)
				}
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
