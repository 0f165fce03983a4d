package security

import (
	"testing"
	"time"
)

func TestEphemeralSignerRoundTrip(t *testing.T) {
	signer, err := NewEphemeralSigner()
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	token, err := signer.Sign("user-1", "ops@vaultscope.io", "analyst", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := signer.Verifier().ParseAndValidate(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !claims.Valid {
		t.Fatal("expected valid claims")
	}
	if claims.UserID != "user-1" || claims.Role != "analyst" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifierRejectsExpiredToken(t *testing.T) {
	signer, err := NewEphemeralSigner()
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	token, err := signer.Sign("user-1", "ops@vaultscope.io", "analyst", -5*time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := signer.Verifier().ParseAndValidate(token); err == nil {
		t.Fatal("expected expired token error")
	}
}

func TestVerifierRejectsForeignKey(t *testing.T) {
	signerA, err := NewEphemeralSigner()
	if err != nil {
		t.Fatalf("signer a: %v", err)
	}
	signerB, err := NewEphemeralSigner()
	if err != nil {
		t.Fatalf("signer b: %v", err)
	}
	token, err := signerA.Sign("user-1", "ops@vaultscope.io", "analyst", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := signerB.Verifier().ParseAndValidate(token); err == nil {
		t.Fatal("expected signature verification failure")
	}
}

func TestVerifierPEMExportRoundTrip(t *testing.T) {
	signer, err := NewEphemeralSigner()
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	pemText, err := signer.PublicKeyPEM()
	if err != nil {
		t.Fatalf("export pem: %v", err)
	}
	verifier, err := NewTokenVerifier(pemText)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	token, err := signer.Sign("user-2", "dd@vaultscope.io", "curator", time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := verifier.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-2" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
}
