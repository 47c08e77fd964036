package validator

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidate_RegisterRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        RegisterRequest
		wantFields []string
	}{
		{
			name: "valid",
			req: RegisterRequest{
				FullName: "Ada Lovelace",
				Email:    "ada@example.com",
				Password: "password123",
			},
		},
		{
			name: "valid with optional fields",
			req: RegisterRequest{
				FullName: "Ada Lovelace",
				Email:    "ada@example.com",
				Password: "password123",
				Role:     strPtr("instructor"),
				Headline: strPtr("Analytical engines"),
				School:   strPtr("University of London"),
			},
		},
		{
			name: "all violations listed",
			req: RegisterRequest{
				FullName: "A",
				Email:    "not-an-email",
				Password: "short",
			},
			wantFields: []string{"fullName", "email", "password"},
		},
		{
			name: "password too long",
			req: RegisterRequest{
				FullName: "Ada Lovelace",
				Email:    "ada@example.com",
				Password: strings.Repeat("a", 73),
			},
			wantFields: []string{"password"},
		},
		{
			name: "admin role not self-assignable",
			req: RegisterRequest{
				FullName: "Mallory",
				Email:    "mallory@example.com",
				Password: "password123",
				Role:     strPtr("admin"),
			},
			wantFields: []string{"role"},
		},
		{
			name: "headline too long",
			req: RegisterRequest{
				FullName: "Ada Lovelace",
				Email:    "ada@example.com",
				Password: "password123",
				Headline: strPtr(strings.Repeat("x", 121)),
			},
			wantFields: []string{"headline"},
		},
		{
			// 41 runes but >80 bytes: limits count characters, not bytes.
			name: "multibyte name within limit",
			req: RegisterRequest{
				FullName: strings.Repeat("学", 41),
				Email:    "xue@example.com",
				Password: "password123",
			},
		},
		{
			name: "multibyte name too long",
			req: RegisterRequest{
				FullName: strings.Repeat("学", 81),
				Email:    "xue@example.com",
				Password: "password123",
			},
			wantFields: []string{"fullName"},
		},
		{
			name: "multibyte headline within limit",
			req: RegisterRequest{
				FullName: "Ada Lovelace",
				Email:    "ada@example.com",
				Password: "password123",
				Headline: strPtr(strings.Repeat("界", 120)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(&tt.req)
			if len(tt.wantFields) == 0 {
				if len(errs) != 0 {
					t.Fatalf("expected no violations, got %v", errs)
				}
				return
			}
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d violations, got %d: %v", len(tt.wantFields), len(errs), errs)
			}
			got := map[string]bool{}
			for _, e := range errs {
				got[e.Field] = true
			}
			for _, f := range tt.wantFields {
				if !got[f] {
					t.Errorf("missing violation for field %q in %v", f, errs)
				}
			}
		})
	}
}

func TestValidate_LoginRequest(t *testing.T) {
	v := New()

	if errs := v.Validate(&LoginRequest{Email: "a@b.co", Password: "x"}); len(errs) != 0 {
		t.Fatalf("expected valid login request, got %v", errs)
	}
	if errs := v.Validate(&LoginRequest{Email: "nope", Password: ""}); len(errs) != 2 {
		t.Fatalf("expected 2 violations, got %v", errs)
	}
}

func TestValidate_UpdateProfileRequest(t *testing.T) {
	v := New()

	// Empty update is valid: every field is optional.
	if errs := v.Validate(&UpdateProfileRequest{}); len(errs) != 0 {
		t.Fatalf("expected empty update to be valid, got %v", errs)
	}
	if errs := v.Validate(&UpdateProfileRequest{FullName: strPtr("A")}); len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %v", errs)
	}
}
