package config

import (
	"os"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/poofware/tenancy-service/internal/utils"
)

type Config struct {
	AppName   string
	AppPort   string
	AppUrl    string
	Env       string
	RedisURL  string
	JWTSecret string

	SendgridAPIKey string

	// Feature-flag snapshots
	LDFlag_CascadeDeletePropertyRecords bool
	LDFlag_SendOutcomeEmails            bool
	LDFlag_SendgridFromEmail            string
}

const LDConnectionTimeout = 5 * time.Second

// AppName can be overridden at build time with -ldflags.
var AppName = "tenancy-service"

// LoadConfig reads the runtime environment and snapshots feature flags.
// Required values are fatal when missing.
func LoadConfig() *Config {
	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		utils.Logger.Fatal("REDIS_URL env var is missing")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}

	cfg := &Config{
		AppName:   AppName,
		AppPort:   appPort,
		AppUrl:    appURL,
		Env:       env,
		RedisURL:  redisURL,
		JWTSecret: jwtSecret,

		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
	}

	loadFlags(cfg, env)

	utils.Logger.Infof("Loaded config for %s (%s)", cfg.AppName, env)
	return cfg
}

// loadFlags snapshots LaunchDarkly flags. Without an SDK key the defaults
// stand: no cascade cleanup on property delete (the historical behavior)
// and no outcome emails.
func loadFlags(cfg *Config, env string) {
	ldSDK := os.Getenv("LD_SDK_KEY")
	if ldSDK == "" {
		utils.Logger.Warn("LD_SDK_KEY not set; feature flags use defaults")
		return
	}

	ldClient, err := ld.MakeClient(ldSDK, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	defer ldClient.Close()
	if !ldClient.Initialized() {
		utils.Logger.Fatal("LaunchDarkly client failed to initialize")
	}

	ctx := ldcontext.New(cfg.AppName + "-" + env)

	cascade, err := ldClient.BoolVariation("cascade_delete_property_records", ctx, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("cascade_delete_property_records flag error")
	}
	utils.Logger.Debugf("cascade_delete_property_records flag: %t", cascade)

	sendEmails, err := ldClient.BoolVariation("send_outcome_emails", ctx, false)
	if err != nil {
		utils.Logger.WithError(err).Fatal("send_outcome_emails flag error")
	}
	utils.Logger.Debugf("send_outcome_emails flag: %t", sendEmails)

	fromEmail, err := ldClient.StringVariation("sendgrid_from_email", ctx, "")
	if err != nil {
		utils.Logger.WithError(err).Fatal("sendgrid_from_email flag error")
	}
	if sendEmails && fromEmail == "" {
		utils.Logger.Fatal("send_outcome_emails is on but sendgrid_from_email is empty")
	}

	cfg.LDFlag_CascadeDeletePropertyRecords = cascade
	cfg.LDFlag_SendOutcomeEmails = sendEmails
	cfg.LDFlag_SendgridFromEmail = fromEmail
}
