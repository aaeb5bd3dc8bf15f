package config

import (
	"testing"
	"time"

	"github.com/AlenaMolokova/masterdata/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		env         map[string]string
		expectedErr error
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "только флаги",
			args: []string{"-a", ":9090", "-d", "postgres://flag", "-s", testSecret},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":9090", cfg.RunAddr)
				assert.Equal(t, "postgres://flag", cfg.DatabaseURI)
				assert.Equal(t, constants.DefaultSessionTTL, cfg.SessionTTL)
				assert.False(t, cfg.AccountingEnabled())
			},
		},
		{
			name: "переменные окружения важнее флагов",
			args: []string{"-d", "postgres://flag", "-s", testSecret},
			env: map[string]string{
				"DATABASE_URI":       "postgres://env",
				"SESSION_TTL":        "30m",
				"ACCOUNTING_API_URL": "http://accounting.local/api",
				"ACCOUNTING_API_KEY": "key",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "postgres://env", cfg.DatabaseURI)
				assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
				assert.True(t, cfg.AccountingEnabled())
				assert.Equal(t, "key", cfg.AccountingAPIKey)
			},
		},
		{
			name:        "нет строки подключения",
			args:        []string{"-s", testSecret},
			expectedErr: ErrDatabaseURIRequired,
		},
		{
			name:        "нет секрета сессии",
			args:        []string{"-d", "postgres://flag"},
			expectedErr: ErrSessionSecretRequired,
		},
		{
			name:        "короткий секрет",
			args:        []string{"-d", "postgres://flag", "-s", "short"},
			expectedErr: ErrSessionSecretTooShort,
		},
		{
			name:        "адрес учёта без ключа",
			args:        []string{"-d", "postgres://flag", "-s", testSecret, "-r", "http://accounting.local"},
			expectedErr: ErrAccountingKeyRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environ := map[string]string{}
			for k, v := range tt.env {
				environ[k] = v
			}

			cfg, err := Load(tt.args, environ)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
