package model

import "testing"

func TestValidVerifyStatus(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{VerifyPending, true},
		{VerifyApproved, true},
		{VerifyRejected, true},
		{"", false},
		{"Pending", false},
		{"verified", false},
		{"approved ", false},
	}
	for _, tc := range cases {
		if got := ValidVerifyStatus(tc.status); got != tc.want {
			t.Errorf("ValidVerifyStatus(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}
