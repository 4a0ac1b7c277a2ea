package config

import (
	"strings"
	"testing"
	"time"
)

// TestJenkinsConfig_Validate tests the Validate method with various scenarios.
func TestJenkinsConfig_Validate(t *testing.T) {
	valid := JenkinsConfig{
		URL:      "http://jenkins.local:8080",
		Username: "admin",
		Token:    "secret",
		Job:      DefaultJob,
		Timeout:  DefaultTimeout,
	}

	tests := []struct {
		name    string
		mutate  func(c *JenkinsConfig)
		wantErr string
	}{
		{name: "valid config", mutate: func(c *JenkinsConfig) {}},
		{name: "empty url", mutate: func(c *JenkinsConfig) { c.URL = "" }, wantErr: "jenkins url is required"},
		{name: "relative url", mutate: func(c *JenkinsConfig) { c.URL = "jenkins.local" }, wantErr: "not a valid absolute URL"},
		{name: "empty username", mutate: func(c *JenkinsConfig) { c.Username = "" }, wantErr: "jenkins username is required"},
		{name: "empty token", mutate: func(c *JenkinsConfig) { c.Token = "" }, wantErr: "jenkins token is required"},
		{name: "zero timeout", mutate: func(c *JenkinsConfig) { c.Timeout = 0 }, wantErr: "timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDefaultTimeout(t *testing.T) {
	if DefaultTimeout != 30*time.Second {
		t.Errorf("DefaultTimeout = %v, want 30s", DefaultTimeout)
	}
}
