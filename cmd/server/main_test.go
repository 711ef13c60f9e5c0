package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botanica/internal/conservation/models"
	jwttoken "botanica/internal/jwt_token"
	"botanica/internal/platform/config"
)

// isolate keeps developer environment variables out of command tests.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BOTANICA_CONFIG", "DATABASE_URL", "REDIS_URL", "KAFKA_BROKERS", "JWT_SIGNING_KEY", "JWT_ISSUER", "JWT_AUDIENCE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	isolate(t)
	names := []string{}
	for _, c := range rootCmd().Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed", "assess", "token"}, names)
}

func TestAssessCmd_FakeSource(t *testing.T) {
	isolate(t)

	out, err := execute(t, "assess", "--log-level", "error", "--source", "fake", "Welwitschia mirabilis", " Quercus robur ")
	require.NoError(t, err)

	var got []models.Classification
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	require.Len(t, got, 2)

	assert.Equal(t, "Welwitschia mirabilis", got[0].ScientificName)
	assert.True(t, got[0].Available)
	require.NotNil(t, got[0].Assessment)
	assert.Equal(t, models.NearThreatened, got[0].Assessment.Category)

	assert.Equal(t, "Quercus robur", got[1].ScientificName, "names are trimmed")
	assert.False(t, got[1].Available)
	assert.Nil(t, got[1].Assessment)
}

func TestAssessCmd_RequiresName(t *testing.T) {
	isolate(t)
	_, err := execute(t, "assess")
	require.Error(t, err)
}

func TestTokenCmd_IssuesValidCuratorToken(t *testing.T) {
	isolate(t)

	out, err := execute(t, "token", "--log-level", "error", "--subject", "herbarium-curator")
	require.NoError(t, err)

	cfg := config.Defaults()
	svc := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)
	subject, err := svc.ValidateSubject(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "herbarium-curator", subject)
}

func TestSeedCmd_NeedsDatabase(t *testing.T) {
	isolate(t)
	path := t.TempDir() + "/seed.yaml"
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	_, err := execute(t, "seed", "--log-level", "error", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
