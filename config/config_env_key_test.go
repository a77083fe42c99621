package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"bucketUrl": "mem://",
			"redis": map[string]any{
				"addr": "",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"admin": map[string]any{
			"passwordHash": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_REDIS_ADDR", want: "storage.redis.addr"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ADMIN_PASSWORDHASH", want: "admin.passwordHash"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsEverySection(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Storage.Driver != "blob" || cfg.Storage.BucketURL != "mem://" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Slots.Cart != DefaultCartSlot || cfg.Slots.Catalog != DefaultCatalogSlot ||
		cfg.Slots.Orders != DefaultOrderSlot || cfg.Slots.Messages != DefaultMessageSlot ||
		cfg.Slots.Admin != DefaultAdminSlot {
		t.Fatalf("unexpected slot defaults: %+v", cfg.Slots)
	}
	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "admin123" {
		t.Fatalf("unexpected admin defaults: %+v", cfg.Admin)
	}
	if cfg.HTTP.MaxRequestBodySize != "100KB" {
		t.Fatalf("unexpected body limit: %q", cfg.HTTP.MaxRequestBodySize)
	}
}

func TestApplyDefaults_HashSuppressesDefaultPassword(t *testing.T) {
	cfg := &Config{Admin: &AdminConfig{PasswordHash: "$2a$10$abc"}}
	cfg.ApplyDefaults()

	if cfg.Admin.Password != "" {
		t.Fatalf("password = %q, want empty when a hash is configured", cfg.Admin.Password)
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("storage:\n  driver: blob\n  bucketUrl: mem://\nadmin:\n  username: admin\nhttp:\n  port: 8080\n  timeouts:\n    readTimeout: 10s\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("STORAGE_BUCKETURL", "file:///srv/biaresh")
	t.Setenv("ADMIN_USERNAME", "owner")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.Storage.BucketURL != "file:///srv/biaresh" {
		t.Fatalf("bucketUrl = %q", cfg.Storage.BucketURL)
	}
	if cfg.Admin.Username != "owner" {
		t.Fatalf("username = %q", cfg.Admin.Username)
	}
	if cfg.HTTP.Port != 8080 || cfg.HTTP.Timeouts.ReadTimeout.Seconds() != 10 {
		t.Fatalf("unexpected http config: %+v", cfg.HTTP)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("config"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
