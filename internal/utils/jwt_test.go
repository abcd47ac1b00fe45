package utils

import (
	"testing"
	"time"

	"github.com/jvreeken/boodschapp/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "0198a6a0-0000-7000-8000-000000000001"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Scope != models.TokenScopeAuth {
		t.Errorf("expected scope %q, got %q", models.TokenScopeAuth, token.Scope)
	}
	if token.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, token.UserID)
	}
}

// Two tokens generated for the same user inside one second are
// byte-identical: iat and exp carry second precision and no per-token claim
// differentiates them. The token store has to tolerate the duplicate row.
func TestGenerateJWTToken_SameSecondTokensAreIdentical(t *testing.T) {
	issuer := "test-issuer"
	userID := "0198a6a0-0000-7000-8000-000000000001"
	key := "secret-key"

	// Align away from a second boundary so both calls land in the same
	// whole second.
	if remainder := time.Until(time.Now().Truncate(time.Second).Add(time.Second)); remainder < 100*time.Millisecond {
		time.Sleep(remainder)
	}

	first, err := GenerateJWTToken(issuer, userID, time.Hour, key)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := GenerateJWTToken(issuer, userID, time.Hour, key)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first.SignedString != second.SignedString {
		t.Errorf("expected identical signed strings, got %q and %q", first.SignedString, second.SignedString)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "uid", time.Hour, "key"},
		{"empty userID", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "uid", 0, "key"},
		{"empty key", "iss", "uid", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "0198a6a0-0000-7000-8000-000000000002"
	key := "secret-key"
	duration := time.Minute * 5

	genToken, _ := GenerateJWTToken(issuer, userID, duration, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, parsedToken.UserID)
	}
	if parsedToken.Scope != models.TokenScopeAuth {
		t.Errorf("expected scope %q, got %q", models.TokenScopeAuth, parsedToken.Scope)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, "uid", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"

	genToken, _ := GenerateJWTToken("issuer-a", "uid", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "issuer-b")
	if err == nil {
		t.Error("expected error due to issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	key := "key"
	issuer := "iss"

	genToken, _ := GenerateJWTToken(issuer, "uid", time.Nanosecond, key)
	time.Sleep(time.Millisecond)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}
