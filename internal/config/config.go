package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

type Config struct {
	Dev      bool   `envconfig:"DEV" default:"false"`
	RegionID string `envconfig:"REGION_ID" default:"dnipro"`
	Timezone string `envconfig:"TIMEZONE" default:"Europe/Kyiv"`

	ChannelURL        string        `envconfig:"CHANNEL_URL" default:"https://t.me/s/cek_info"`
	FetchTimeout      time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	PostsLimit        int           `envconfig:"POSTS_LIMIT" default:"20"`
	MonitorPostsLimit int           `envconfig:"MONITOR_POSTS_LIMIT" default:"10"`

	DocumentPath  string `envconfig:"DOCUMENT_PATH" default:"output/Dneproblenergo.json"`
	WatermarkPath string `envconfig:"WATERMARK_PATH" default:"output/last_processed_message.json"`
	DBPath        string `envconfig:"DB_PATH" default:"data/cek-notifier.db"`

	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"10m"`
	MonitorInterval time.Duration `envconfig:"MONITOR_INTERVAL" default:"5m"`
	NotifyInterval  time.Duration `envconfig:"NOTIFY_INTERVAL" default:"5m"`
	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h"`
	HistoryTTL      time.Duration `envconfig:"HISTORY_TTL" default:"720h"`
	PublicationsTTL time.Duration `envconfig:"PUBLICATIONS_TTL" default:"72h"`
	StatsDays       int           `envconfig:"STATS_DAYS" default:"7"`

	TelegramToken         string `envconfig:"TELEGRAM_TOKEN"`
	TelegramTokenSSMParam string `envconfig:"TELEGRAM_TOKEN_SSM_PARAM" default:"/cek-notifier/prod/telegram-token"`
	AdminChatID           int64  `envconfig:"ADMIN_CHAT_ID" default:"0"`
	BotEnabled            bool   `envconfig:"BOT_ENABLED" default:"false"`

	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9090"`

	CalendarEnabled         bool          `envconfig:"CALENDAR_ENABLED" default:"false"`
	CalendarCredentialsPath string        `envconfig:"CALENDAR_CREDENTIALS_PATH"`
	CalendarID              string        `envconfig:"CALENDAR_ID"`
	CalendarGroup           string        `envconfig:"CALENDAR_GROUP"`
	CalendarSyncInterval    time.Duration `envconfig:"CALENDAR_SYNC_INTERVAL" default:"5m"`
	CalendarCleanupInterval time.Duration `envconfig:"CALENDAR_CLEANUP_INTERVAL" default:"24h"`
	CalendarLookbackDays    int           `envconfig:"CALENDAR_LOOKBACK_DAYS" default:"7"`
}

type tokenLookup func(ctx context.Context, name string) (string, error)

// NewConfig reads an optional .env file and the environment. Outside dev mode a missing
// Telegram token is read from SSM when the bot or admin notifications need it.
func NewConfig(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return newConfig(ctx, getSSMParameter)
}

func newConfig(ctx context.Context, lookup tokenLookup) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if err = res.validate(); err != nil {
		return nil, err
	}

	if !res.TelegramRequired() || res.TelegramToken != "" {
		return res, nil
	}
	if res.Dev {
		return nil, errors.New("TELEGRAM_TOKEN is required in dev mode")
	}

	res.TelegramToken, err = lookup(ctx, res.TelegramTokenSSMParam)
	if err != nil {
		return nil, err
	}
	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

// TelegramRequired reports whether any enabled component talks to Telegram.
func (c *Config) TelegramRequired() bool {
	return c.BotEnabled || c.AdminChatID != 0
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) CalendarGroupID() (schedule.GroupID, error) {
	g, err := schedule.GroupIDFromNumber(c.CalendarGroup)
	if err != nil {
		return "", fmt.Errorf("parse CALENDAR_GROUP: %w", err)
	}
	return g, nil
}

func (c *Config) validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.PostsLimit <= 0 || c.MonitorPostsLimit <= 0 {
		return errors.New("POSTS_LIMIT and MONITOR_POSTS_LIMIT must be positive")
	}
	if !c.CalendarEnabled {
		return nil
	}
	if c.CalendarCredentialsPath == "" || c.CalendarID == "" {
		return errors.New("CALENDAR_CREDENTIALS_PATH and CALENDAR_ID are required when calendar is enabled")
	}
	if _, err := c.CalendarGroupID(); err != nil {
		return err
	}
	return nil
}

func getSSMParameter(ctx context.Context, name string) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM parameter %s: %w", name, err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", fmt.Errorf("SSM parameter %s not found", name)
	}

	return *param.Parameter.Value, nil
}
