package domain

import "testing"

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusApplied, StatusUnderReview, true},
		{StatusApplied, StatusAccepted, true},
		{StatusApplied, StatusRejected, true},
		{StatusUnderReview, StatusAccepted, true},
		{StatusUnderReview, StatusRejected, true},
		{StatusUnderReview, StatusApplied, false},
		{StatusAccepted, StatusApplied, false},
		{StatusAccepted, StatusUnderReview, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusApplied, false},
		{StatusRejected, StatusAccepted, false},
		{StatusApplied, StatusApplied, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestApplicationStatus_Valid(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusApplied, StatusUnderReview, StatusAccepted, StatusRejected} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if ApplicationStatus("pending").Valid() {
		t.Errorf("unknown status should be invalid")
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleSeeker.Valid() || !RoleRecruiter.Valid() {
		t.Fatalf("known roles should be valid")
	}
	if Role("admin").Valid() {
		t.Fatalf("unknown role should be invalid")
	}
}
