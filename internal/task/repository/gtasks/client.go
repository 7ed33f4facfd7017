// Package gtasks stores tasks in a Google Tasks list.
package gtasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"
)

// DefaultListID is the special ID for the user's default list.
const DefaultListID = "@default"

// NewService builds a Tasks service from an OAuth client file and a stored token.
// The token source refreshes the access token on its own.
func NewService(ctx context.Context, credentialsPath, tokenPath string) (*tasks.Service, error) {
	oauthConfig, err := LoadOAuthConfig(credentialsPath)
	if err != nil {
		return nil, err
	}

	token, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	return NewServiceWithHTTPClient(ctx, httpClient)
}

// LoadOAuthConfig reads an OAuth desktop-app client file scoped to Google Tasks.
func LoadOAuthConfig(credentialsPath string) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasks.TasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials file: %w", err)
	}
	return oauthConfig, nil
}

// LoadToken reads a token written by SaveToken.
func LoadToken(tokenPath string) (*oauth2.Token, error) {
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token file: %w", err)
	}
	return &token, nil
}

// SaveToken writes tok to tokenPath, readable by the owner only.
func SaveToken(tokenPath string, tok *oauth2.Token) error {
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// NewServiceWithHTTPClient builds a Tasks service on a caller-supplied client.
func NewServiceWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*tasks.Service, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return svc, nil
}
