// scripts/webhook-replay/main.go
//
// Replays a captured webhook payload against a locally running server,
// signing it the way the provider would. Useful for exercising the
// ingestion pipeline without exposing the dev machine to the internet.
//
// Usage:
//   go run scripts/webhook-replay/main.go -provider github -event push \
//     -secret dev-secret payload.json

package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

func main() {
	provider := flag.String("provider", "github", "github or gitlab")
	event := flag.String("event", "push", "event header value (e.g. push, Merge Request Hook)")
	secret := flag.String("secret", "", "webhook secret / token")
	target := flag.String("target", "http://localhost:8080", "server base URL")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("Usage: webhook-replay [flags] payload.json")
	}

	payload, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read payload file %q: %v", flag.Arg(0), err)
	}

	var req *http.Request
	switch *provider {
	case "github":
		req, err = http.NewRequest("POST", *target+"/webhook/github", bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("Failed to build request: %v", err)
		}
		req.Header.Set("X-GitHub-Event", *event)
		req.Header.Set("X-GitHub-Delivery", "replay")
		if *secret != "" {
			mac := hmac.New(sha256.New, []byte(*secret))
			mac.Write(payload)
			req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
		}
	case "gitlab":
		req, err = http.NewRequest("POST", *target+"/webhook/gitlab", bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("Failed to build request: %v", err)
		}
		req.Header.Set("X-Gitlab-Event", *event)
		req.Header.Set("X-Gitlab-Token", *secret)
	default:
		log.Fatalf("Unknown provider %q (expected github or gitlab)", *provider)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s\n%s\n", resp.Status, body)
}
