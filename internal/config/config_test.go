package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

func lookupStub(token string, err error) tokenLookup {
	return func(_ context.Context, name string) (string, error) {
		if name != "/cek-notifier/prod/telegram-token" {
			return "", errors.New("unexpected parameter " + name)
		}
		return token, err
	}
}

func failingLookup(t *testing.T) tokenLookup {
	return func(context.Context, string) (string, error) {
		t.Fatal("SSM must not be queried")
		return "", nil
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	got, err := newConfig(t.Context(), failingLookup(t))
	require.NoError(t, err)

	assert.Equal(t, "dnipro", got.RegionID)
	assert.Equal(t, "https://t.me/s/cek_info", got.ChannelURL)
	assert.Equal(t, "output/Dneproblenergo.json", got.DocumentPath)
	assert.Equal(t, 10, got.MonitorPostsLimit)
	assert.Equal(t, 30*time.Second, got.FetchTimeout)
	assert.Equal(t, 720*time.Hour, got.HistoryTTL)
	assert.False(t, got.TelegramRequired())

	loc, err := got.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Kyiv", loc.String())
}

func TestNewConfig_TelegramToken(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		lookup  func(t *testing.T) tokenLookup
		want    string
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "token_from_env",
			env:  map[string]string{"BOT_ENABLED": "true", "TELEGRAM_TOKEN": "env-token"},
			lookup: func(t *testing.T) tokenLookup {
				return failingLookup(t)
			},
			want:    "env-token",
			wantErr: assert.NoError,
		},
		{
			name: "token_from_ssm",
			env:  map[string]string{"ADMIN_CHAT_ID": "-100123"},
			lookup: func(*testing.T) tokenLookup {
				return lookupStub("ssm-token", nil)
			},
			want:    "ssm-token",
			wantErr: assert.NoError,
		},
		{
			name: "ssm_error",
			env:  map[string]string{"BOT_ENABLED": "true"},
			lookup: func(*testing.T) tokenLookup {
				return lookupStub("", errors.New("access denied"))
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, "access denied", i...)
			},
		},
		{
			name: "ssm_empty",
			env:  map[string]string{"BOT_ENABLED": "true"},
			lookup: func(*testing.T) tokenLookup {
				return lookupStub("", nil)
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.EqualError(t, err, "telegram token is required", i...)
			},
		},
		{
			name: "dev_requires_env_token",
			env:  map[string]string{"DEV": "true", "BOT_ENABLED": "true"},
			lookup: func(t *testing.T) tokenLookup {
				return failingLookup(t)
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, "TELEGRAM_TOKEN is required", i...)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := newConfig(t.Context(), tt.lookup(t))
			if !tt.wantErr(t, err, "newConfig(_, _)") {
				return
			}
			if err == nil {
				assert.Equal(t, tt.want, got.TelegramToken)
			}
		})
	}
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown_timezone",
			env:     map[string]string{"TIMEZONE": "Mars/Olympus"},
			wantErr: `load location "Mars/Olympus"`,
		},
		{
			name:    "non_positive_limit",
			env:     map[string]string{"MONITOR_POSTS_LIMIT": "0"},
			wantErr: "must be positive",
		},
		{
			name:    "calendar_without_id",
			env:     map[string]string{"CALENDAR_ENABLED": "true", "CALENDAR_CREDENTIALS_PATH": "creds.json"},
			wantErr: "CALENDAR_ID are required",
		},
		{
			name: "calendar_bad_group",
			env: map[string]string{
				"CALENDAR_ENABLED":          "true",
				"CALENDAR_CREDENTIALS_PATH": "creds.json",
				"CALENDAR_ID":               "primary",
				"CALENDAR_GROUP":            "four",
			},
			wantErr: "parse CALENDAR_GROUP",
		},
		{
			name:    "bad_duration",
			env:     map[string]string{"REFRESH_INTERVAL": "often"},
			wantErr: "envconfig process",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := newConfig(t.Context(), failingLookup(t))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_CalendarGroupID(t *testing.T) {
	t.Setenv("CALENDAR_ENABLED", "true")
	t.Setenv("CALENDAR_CREDENTIALS_PATH", "creds.json")
	t.Setenv("CALENDAR_ID", "primary")
	t.Setenv("CALENDAR_GROUP", "4.2")

	got, err := newConfig(t.Context(), failingLookup(t))
	require.NoError(t, err)

	g, err := got.CalendarGroupID()
	require.NoError(t, err)
	assert.Equal(t, schedule.GroupID("GPV4.2"), g)
}
