// cmd/gtasks-auth
//
// Run this once to authorize Google Tasks access and write the token file
// read by the gtasks task store.
//
// Usage:
//   go run ./cmd/gtasks-auth [credentials.json] [token.json]
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"task-portal/internal/task/repository/gtasks"
	"task-portal/pkg/log"
)

func main() {
	ctx := context.Background()
	l := log.Init(log.ZapConfig{Level: "info", Encoding: log.EncodingConsole, ColorEnabled: true})

	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := "token.json"
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	config, err := gtasks.LoadOAuthConfig(credsPath)
	if err != nil {
		l.Fatalf(ctx, "%v (expected an OAuth Desktop App credentials file at %q)", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the task list:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		l.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		l.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	if err := gtasks.SaveToken(tokenPath, tok); err != nil {
		l.Fatalf(ctx, "%v", err)
	}

	l.Infof(ctx, "Token saved to %s. Set google_tasks.token_path to it and restart the API.", tokenPath)
}
