package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `env: dev
whatsapp:
  token: "token-123"
  verify_token: "verify-456"
  phone_number_id: "196914110180497"
  api_version: "v21.0"
listen:
  bind_ip: "0.0.0.0"
  port: "9300"
  key: "api-key-789"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	// cleanenv lets the environment override file values
	t.Setenv("WHATSAPP_API_VERSION", "v22.0")

	conf := MustLoad(path)

	if conf.Env != "dev" {
		t.Fatalf("env = %q, want dev", conf.Env)
	}
	if conf.WhatsApp.Token != "token-123" {
		t.Fatalf("token = %q, want token-123", conf.WhatsApp.Token)
	}
	if conf.WhatsApp.APIVersion != "v22.0" {
		t.Fatalf("api_version = %q, want the env override v22.0", conf.WhatsApp.APIVersion)
	}
	if conf.WhatsApp.APIBase != "https://graph.facebook.com" {
		t.Fatalf("api_base = %q, want the default", conf.WhatsApp.APIBase)
	}
	if conf.Listen.Port != "9300" {
		t.Fatalf("port = %q, want 9300", conf.Listen.Port)
	}
}
