// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import "testing"

func TestShortDigest(t *testing.T) {
	tests := []struct {
		sha  string
		want string
	}{
		{"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", "2cf24dba5fb0"},
		{"abc123", "abc123"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := shortDigest(tt.sha); got != tt.want {
			t.Errorf("shortDigest(%q) = %q, want %q", tt.sha, got, tt.want)
		}
	}
}
