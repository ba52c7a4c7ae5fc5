package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
app:
  name: zenzone-admin
  env: test
  http:
    port: 9090
log:
  level: debug
  json: true
db:
  driver: postgres
  dsn: "host=localhost"
upload:
  api_key: sk_test
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := Load(path)
	if c.App.Name != "zenzone-admin" || c.App.HTTP.Port != 9090 {
		t.Fatalf("app = %+v", c.App)
	}
	if !c.Log.JSON || c.Log.Level != "debug" {
		t.Fatalf("log = %+v", c.Log)
	}
	if c.Upload.APIKey != "sk_test" {
		t.Fatalf("upload = %+v", c.Upload)
	}
	// unset knobs fall back to sane defaults
	if c.DB.MaxOpenConns != 20 || c.DB.MaxIdleConns != 5 || c.DB.ConnectTimeoutSec != 5 {
		t.Fatalf("db defaults = %+v", c.DB)
	}
	if c.Upload.ImageMaxMB != 4 || c.Upload.AudioMaxMB != 8 {
		t.Fatalf("upload defaults = %+v", c.Upload)
	}
}
