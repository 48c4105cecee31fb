package static

import (
	"github.com/raphi011/devctl/internal/branch"
	"github.com/raphi011/devctl/internal/ui/styles"
)

// StatusHeaders are the column headers for the status table.
var StatusHeaders = []string{"REPO", "LOCAL BRANCH", "REMOTE", "CLEAN"}

// StatusTableRow converts one repo status to table cells matching
// StatusHeaders.
func StatusTableRow(st branch.RepoStatus, expected string) []string {
	if st.Err != nil {
		return []string{st.Repo, styles.FailText("error: " + st.Err.Error()), "", ""}
	}

	branchCell := st.LocalBranch
	if !st.MatchesExpected {
		branchCell = styles.FailText(st.LocalBranch) + styles.MutedText(" ← expected "+expected)
	}

	return []string{st.Repo, branchCell, boolSymbol(st.RemoteExists), boolSymbol(st.WorkingTreeClean)}
}

func boolSymbol(ok bool) string {
	if ok {
		return styles.Ok()
	}
	return styles.Fail()
}
