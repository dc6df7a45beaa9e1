package model

import "testing"

func TestUsernamePolicyKey(t *testing.T) {
	cases := []struct {
		name   string
		policy UsernamePolicy
		input  string
		want   string
	}{
		{"sensitive keeps case", UsernamePolicy{}, "Test", "Test"},
		{"insensitive folds case", UsernamePolicy{CaseInsensitive: true}, "TeSt", "test"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.policy.Key(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEmailKey(t *testing.T) {
	if got := EmailKey("  McNameFace@Email.com "); got != "mcnameface@email.com" {
		t.Fatalf("unexpected email key %q", got)
	}
}
