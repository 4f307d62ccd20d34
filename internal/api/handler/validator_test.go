package handler

import (
	"strings"
	"testing"
)

func TestEchoValidator_CreateUserRequest(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name    string
		req     createUserRequest
		wantErr string
	}{
		{"valid", createUserRequest{ID: "u1", Name: "Alice", Role: "rider"}, ""},
		{"missing id", createUserRequest{Name: "Alice", Role: "rider"}, "id is required"},
		{"whitespace id", createUserRequest{ID: "u 1", Name: "Alice", Role: "rider"}, "id must not contain whitespace"},
		{"long id", createUserRequest{ID: strings.Repeat("a", 129), Name: "Alice", Role: "rider"}, "id must be at most 128 characters"},
		{"multi-byte id at limit", createUserRequest{ID: strings.Repeat("é", 128), Name: "Alice", Role: "rider"}, ""},
		{"missing name and role", createUserRequest{ID: "u1"}, "name is required; role is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("expected %q, got %v", tc.wantErr, err)
			}
		})
	}
}
