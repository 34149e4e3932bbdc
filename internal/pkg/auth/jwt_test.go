package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("email = %q, want %q", claims.Email, "a@x.com")
	}
	if claims.Issuer != "test" {
		t.Errorf("issuer = %q, want %q", claims.Issuer, "test")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// Corrupt the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.ValidateToken(tampered); err == nil {
		t.Error("expected error for tampered token, got nil")
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).IssueToken("a@x.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour, TokenIssuer: "test"})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected error for token signed with a different secret, got nil")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestService(time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for garbage token, got nil")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"empty header", "", "", true},
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
