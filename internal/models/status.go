package models

import "strings"

// ApplicationProgress is the fixed milestone order used by the
// application timeline. REJECTED and CANCELLED are terminal and sit
// outside the order.
var ApplicationProgress = []ApplicationStatus{
	Applied,
	AssessmentInProgress,
	AssessmentCompleted,
	Eligible,
	PendingVerification,
	AgreementSigned,
	ApplicationActive,
	ApplicationCompleted,
}

var progressIndex = func() map[ApplicationStatus]int {
	m := make(map[ApplicationStatus]int, len(ApplicationProgress))
	for i, s := range ApplicationProgress {
		m[s] = i
	}
	return m
}()

// ProgressIndex returns the position of a status in the milestone
// order, or -1 for terminal and unknown statuses.
func ProgressIndex(s ApplicationStatus) int {
	if i, ok := progressIndex[s]; ok {
		return i
	}
	return -1
}

// HasReached reports whether an application currently at `current` has
// passed (or sits at) the `target` milestone. Terminal statuses reach
// nothing except themselves.
func HasReached(current, target ApplicationStatus) bool {
	if current == target {
		return true
	}
	ci, ti := ProgressIndex(current), ProgressIndex(target)
	if ci < 0 || ti < 0 {
		return false
	}
	return ci >= ti
}

// formatLabel turns an UPPER_SNAKE enum value into a display label:
// "PENDING_VERIFICATION" -> "Pending Verification".
func formatLabel(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(s), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// statusLabels is built once so views do a map lookup instead of
// re-running string surgery per render. Covers every enum the backend
// sends today; anything new falls back to formatLabel at lookup time.
var statusLabels = func() map[string]string {
	known := []string{
		string(Applied), string(AssessmentInProgress), string(AssessmentCompleted),
		string(Eligible), string(PendingVerification), string(AgreementSigned),
		string(ApplicationActive), string(ApplicationCompleted),
		string(ApplicationRejected), string(ApplicationCancelled),
		string(NotStarted), string(InProgress), string(Submitted), string(Graded),
		string(MCQ), string(Typing), string(PracticalUpload), string(Mixed),
		string(ProjectOpen), string(ProjectClosed), string(ProjectCompleted),
		string(DataEntry), string(ContentWriting), string(Development),
		string(Design), string(Support),
		string(SessionActive), string(SessionCompleted), string(SessionCancelled),
		string(Unverified), string(VerificationPending), string(Verified),
		string(VerificationRejected),
		string(UserActive), string(UserSuspended), string(UserDeleted),
		string(RoleAdmin), string(RoleFreelancer), string(RoleClient),
	}
	m := make(map[string]string, len(known))
	for _, s := range known {
		m[s] = formatLabel(s)
	}
	return m
}()

// Label returns the human display label for any status/type enum value.
func Label[S ~string](s S) string {
	if l, ok := statusLabels[string(s)]; ok {
		return l
	}
	return formatLabel(string(s))
}

// StateKey returns the stable lowercase hyphen-joined key used for
// visual state selection ("PENDING_VERIFICATION" -> "pending-verification").
func StateKey[S ~string](s S) string {
	return strings.ReplaceAll(strings.ToLower(string(s)), "_", "-")
}
