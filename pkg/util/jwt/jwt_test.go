package jwt

import (
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	Init("test-secret", 60, 168)

	token, err := GenerateAccessToken("Uabc123", true)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "Uabc123" {
		t.Errorf("UserID = %q, want Uabc123", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin = false, want true")
	}
	if claims.Subject != "access_token" {
		t.Errorf("Subject = %q, want access_token", claims.Subject)
	}
}

func TestRefreshTokenCarriesTokenID(t *testing.T) {
	Init("test-secret", 60, 168)

	token, tokenID, err := GenerateRefreshToken("Uabc123", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("tokenID is empty")
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
	if claims.Subject != "refresh_token" {
		t.Errorf("Subject = %q, want refresh_token", claims.Subject)
	}
	if claims.IsAdmin {
		t.Error("IsAdmin = true, want false")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	Init("secret-one", 60, 168)
	token, err := GenerateAccessToken("Uabc123", false)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	Init("secret-two", 60, 168)
	if _, err := ParseToken(token); err == nil {
		t.Error("ParseToken accepted a token signed with a different secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Init("test-secret", -1, 168)
	token, err := GenerateAccessToken("Uabc123", false)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Error("ParseToken accepted an expired token")
	}
}
