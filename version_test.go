package cosmicroses

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	defer func(c string) { GitCommit = c }(GitCommit)

	cases := map[string]struct {
		commit string
		want   string
	}{
		"release only":       {commit: "", want: "v" + release},
		"commit as metadata": {commit: "4c204d6", want: "v" + release + "+4c204d6"},
		"malformed commit":   {commit: "not a commit", want: "v" + release},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			GitCommit = tc.commit
			got := Version()
			assert.Equal(t, tc.want, got)
			_, err := semver.NewVersion(got)
			require.NoError(t, err)
		})
	}
}
