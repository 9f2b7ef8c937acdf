package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldCommit, oldDate := Commit, Date
	defer func() { Commit, Date = oldCommit, oldDate }()

	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{
			name:   "long commit truncated",
			commit: "0123456789abcdef0123456789abcdef01234567",
			date:   "2026-01-02T00:00:00Z",
			want:   "commit: 01234567,",
		},
		{
			name:   "short commit kept whole",
			commit: "abc",
			date:   "2026-01-02T00:00:00Z",
			want:   "commit: abc,",
		},
		{
			name:   "unknown commit omits build info",
			commit: "unknown",
			date:   "unknown",
			want:   "find-track-by-color version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit, Date = tt.commit, tt.date
			got := String()
			if !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
