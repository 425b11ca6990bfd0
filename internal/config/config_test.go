package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	base := Config{
		CMSBaseURL:  "https://cms.example.com",
		CMSAPIToken: "token",
		JWTSecret:   "secret",
	}
	assert.NoError(t, base.Validate())

	missing := base
	missing.CMSBaseURL = ""
	assert.ErrorContains(t, missing.Validate(), "CMS_BASE_URL")

	missing = base
	missing.CMSAPIToken = ""
	assert.ErrorContains(t, missing.Validate(), "CMS_API_TOKEN")

	missing = base
	missing.JWTSecret = ""
	assert.ErrorContains(t, missing.Validate(), "JWT_SECRET")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CMS_BASE_URL", "https://cms.example.com")
	t.Setenv("CMS_API_TOKEN", "token")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://cms.example.com", cfg.CMSBaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_MissingRequiredFails(t *testing.T) {
	t.Setenv("CMS_BASE_URL", "")
	t.Setenv("CMS_API_TOKEN", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://a.test"}, splitOrigins("http://a.test"))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, splitOrigins("http://a.test,http://b.test"))
	assert.Empty(t, splitOrigins(""))
}
