package postgres

import (
	"context"
	"testing"
)

func TestNewPoolWithConfigRejectsBadURL(t *testing.T) {
	_, err := NewPoolWithConfig(context.Background(), PoolConfig{DatabaseURL: "not-a-url"})
	if err == nil {
		t.Fatal("expected error when parsing invalid URL")
	}
}

func TestNewPoolWithConfigFailsWhenUnreachable(t *testing.T) {
	cfg := PoolConfig{
		DatabaseURL: "postgres://invalid:5432/ledgerbook",
		MaxConns:    1,
		MinConns:    0,
	}

	if _, err := NewPoolWithConfig(context.Background(), cfg); err == nil {
		t.Fatal("expected error when pool cannot connect")
	}
}
