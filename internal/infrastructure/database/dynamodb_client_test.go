package database

import (
	"context"
	"testing"

	"vaif_quotes/internal/config"
)

func TestNewAWSConfig(t *testing.T) {
	t.Run("local endpoint gets static credentials", func(t *testing.T) {
		cfg, err := NewAWSConfig(context.Background(), config.AWSConfig{DynamoDBEndpoint: "http://localhost:8000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != defaultRegion {
			t.Fatalf("expected default region, got %q", cfg.Region)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("unexpected credentials error: %v", err)
		}
		if creds.AccessKeyID != localKey || creds.SecretAccessKey != localKey {
			t.Fatalf("expected local credentials, got %q", creds.AccessKeyID)
		}
	})

	t.Run("explicit region and keys", func(t *testing.T) {
		cfg, err := NewAWSConfig(context.Background(), config.AWSConfig{
			Region:          "sa-east-1",
			AccessKeyID:     "AKID",
			SecretAccessKey: "SECRET",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "sa-east-1" {
			t.Fatalf("unexpected region %q", cfg.Region)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("unexpected credentials error: %v", err)
		}
		if creds.AccessKeyID != "AKID" {
			t.Fatalf("unexpected key %q", creds.AccessKeyID)
		}
	})
}
