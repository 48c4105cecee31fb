package branch

// FeatureBranch derives the branch name for a ticket. Every repo in a
// workspace gets the identical name so work on one ticket can be found
// by name everywhere.
func FeatureBranch(ticket string) string {
	return "feature/" + ticket
}
