package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"
)

func signGitHub(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateGitHubSignature(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{GitHubSecret: "global-secret"})
	payload := []byte(`{"ref":"refs/heads/main"}`)

	t.Run("Valid Signature", func(t *testing.T) {
		sig := signGitHub(payload, "global-secret")
		if err := v.ValidateGitHubSignature(payload, sig, ""); err != nil {
			t.Errorf("expected valid signature, got %v", err)
		}
	})

	t.Run("Repository Secret Takes Precedence", func(t *testing.T) {
		sig := signGitHub(payload, "repo-secret")
		if err := v.ValidateGitHubSignature(payload, sig, "repo-secret"); err != nil {
			t.Errorf("expected repo-secret signature accepted, got %v", err)
		}
		// Same signature must fail against the global secret.
		if err := v.ValidateGitHubSignature(payload, sig, ""); err == nil {
			t.Errorf("repo-secret signature must not verify against global secret")
		}
	})

	t.Run("Tampered Payload Rejected", func(t *testing.T) {
		sig := signGitHub(payload, "global-secret")
		tampered := append([]byte{}, payload...)
		tampered[0] ^= 0x01
		if err := v.ValidateGitHubSignature(tampered, sig, ""); err == nil {
			t.Errorf("expected tampered payload to be rejected")
		}
	})

	t.Run("Wrong Format Rejected", func(t *testing.T) {
		if err := v.ValidateGitHubSignature(payload, "sha1=deadbeef", ""); err == nil {
			t.Errorf("expected non-sha256 signature to be rejected")
		}
		if err := v.ValidateGitHubSignature(payload, "sha256=not-hex", ""); err == nil {
			t.Errorf("expected invalid hex to be rejected")
		}
	})

	t.Run("No Secret Configured", func(t *testing.T) {
		empty := NewSecurityValidator(SecurityConfig{})
		sig := signGitHub(payload, "")
		if err := empty.ValidateGitHubSignature(payload, sig, ""); err == nil {
			t.Errorf("expected error when no secret is configured")
		}
	})
}

func TestValidateGitLabToken(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{GitLabToken: "global-token"})

	t.Run("Valid Token", func(t *testing.T) {
		if err := v.ValidateGitLabToken("global-token", ""); err != nil {
			t.Errorf("expected valid token, got %v", err)
		}
	})

	t.Run("Repository Token Takes Precedence", func(t *testing.T) {
		if err := v.ValidateGitLabToken("repo-token", "repo-token"); err != nil {
			t.Errorf("expected repo token accepted, got %v", err)
		}
		if err := v.ValidateGitLabToken("global-token", "repo-token"); err == nil {
			t.Errorf("global token must not verify when repo token is set")
		}
	})

	t.Run("Wrong Token Rejected", func(t *testing.T) {
		if err := v.ValidateGitLabToken("wrong", ""); err == nil {
			t.Errorf("expected wrong token to be rejected")
		}
	})
}

func TestValidateIPAddress(t *testing.T) {
	t.Run("No Allowlist Accepts All", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.7:443"
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("expected no restriction, got %v", err)
		}
	})

	t.Run("CIDR Match", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"192.30.252.0/22"}})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "192.30.253.10:443"
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("expected CIDR match, got %v", err)
		}
	})

	t.Run("Forwarded Header Used", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"10.0.0.1"}})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "127.0.0.1:9999"
		r.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
		if err := v.ValidateIPAddress(r); err != nil {
			t.Errorf("expected first forwarded IP to match, got %v", err)
		}
	})

	t.Run("Unlisted IP Rejected", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"10.0.0.1"}})
		r := httptest.NewRequest("POST", "/webhook/github", nil)
		r.RemoteAddr = "203.0.113.7:443"
		if err := v.ValidateIPAddress(r); err == nil {
			t.Errorf("expected unlisted IP to be rejected")
		}
	})
}

func TestCheckRateLimit(t *testing.T) {
	t.Run("Burst Then Limited", func(t *testing.T) {
		// 60/min → 1 rps with burst 6
		v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 60})

		allowed := 0
		for i := 0; i < 20; i++ {
			if err := v.CheckRateLimit("github"); err == nil {
				allowed++
			}
		}
		if allowed == 0 || allowed == 20 {
			t.Errorf("expected burst then limiting, got %d/20 allowed", allowed)
		}
	})

	t.Run("Sources Are Independent", func(t *testing.T) {
		v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 10})
		for i := 0; i < 10; i++ {
			v.CheckRateLimit("github")
		}
		if err := v.CheckRateLimit("gitlab"); err != nil {
			t.Errorf("expected independent source limit, got %v", err)
		}
	})
}
