package config

import "time"

const (
	// Result limits
	SearchResultLimit    = 10
	BrowseResultLimit    = 20
	RecentFilesLimit     = 5
	TopDownloadsLimit    = 5
	RecentUsersLimit     = 10
	TopUsersLimit        = 10
	PendingRequestsLimit = 10

	// Users active within this window count as active
	ActiveUserWindow = 7 * 24 * time.Hour

	// Branch keyboard layout
	BranchButtonsPerRow = 2
)

// Branches is the fixed universe of academic department tags.
var Branches = []string{"CSE", "ECE", "EEE", "MECH", "CIVIL", "IT", "CSM", "CSD", "CSC", "AIDS", "AIML"}

func IsKnownBranch(code string) bool {
	for _, b := range Branches {
		if b == code {
			return true
		}
	}
	return false
}
