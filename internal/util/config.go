package util

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const DefaultAnnualYieldRate = 0.041

// env files are read in order; values already present in the process
// environment always win
var envFiles = []string{
	".env.local",
	".env",
}

var placeholderValues = map[string]struct{}{
	"your-cloudinary-cloud-name": {},
	"your-api-key":               {},
	"your-api-secret":            {},
}

type CdpSecrets struct {
	ApiKeyName        string
	PrivateKey        string
	ProjectID         string
	ApiHost           string
	ConnectivityProbe bool
}

type DbSecrets struct {
	Url string
}

type SupabaseSecrets struct {
	Url        string
	AnonKey    string
	ServiceKey string
}

type CloudinarySecrets struct {
	CloudName    string
	ApiKey       string
	ApiSecret    string
	UploadPreset string
	ApiHost      string
}

type YieldConfig struct {
	AnnualRate float64
	// false when ANNUAL_YIELD_RATE was unset, zero or unparsable
	RateFromEnv bool
}

type ReportConfig struct {
	EmailTo   string
	EmailFrom string
	AwsRegion string
}

type Config struct {
	Env           string
	DemoMode      bool
	Network       string
	SimulateYield bool
	CheckTimeout  time.Duration

	Cdp        CdpSecrets
	Database   DbSecrets
	Supabase   SupabaseSecrets
	Cloudinary CloudinarySecrets
	Yield      YieldConfig
	Report     ReportConfig

	getenv func(string) string
}

// Get returns the raw value of a named variable, as the config saw it
func (c Config) Get(name string) string {
	if c.getenv == nil {
		return ""
	}
	return c.getenv(name)
}

// IsPlaceholder reports values copied verbatim from the setup template
func IsPlaceholder(value string) bool {
	_, ok := placeholderValues[value]
	return ok
}

func LoadConfig() (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			zap.S().Debugf("env file %s not loaded: %v", f, err)
		}
	}
	return NewConfig(os.Getenv)
}

// NewConfig builds a Config from an arbitrary lookup, which keeps tests
// away from the process environment.
func NewConfig(getenv func(string) string) (*Config, error) {
	c := &Config{
		Env:           getenv("FAIRHOLD_ENV"),
		DemoMode:      getenv("DEMO_MODE") == "true",
		Network:       getenv("NEXT_PUBLIC_NETWORK"),
		SimulateYield: getenv("SIMULATE_YIELD") == "true",
		CheckTimeout:  10 * time.Second,
		Cdp: CdpSecrets{
			ApiKeyName:        getenv("CDP_API_KEY_NAME"),
			PrivateKey:        getenv("CDP_PRIVATE_KEY"),
			ProjectID:         getenv("CDP_PROJECT_ID"),
			ApiHost:           valueOrDefault(getenv("CDP_API_HOST"), "api.cdp.coinbase.com"),
			ConnectivityProbe: getenv("CDP_CONNECTIVITY_PROBE") == "true",
		},
		Database: DbSecrets{
			Url: getenv("DATABASE_URL"),
		},
		Supabase: SupabaseSecrets{
			Url:        strings.TrimRight(getenv("SUPABASE_URL"), "/"),
			AnonKey:    getenv("SUPABASE_ANON_KEY"),
			ServiceKey: getenv("SUPABASE_SERVICE_KEY"),
		},
		Cloudinary: CloudinarySecrets{
			CloudName:    getenv("CLOUDINARY_CLOUD_NAME"),
			ApiKey:       getenv("CLOUDINARY_API_KEY"),
			ApiSecret:    getenv("CLOUDINARY_API_SECRET"),
			UploadPreset: getenv("CLOUDINARY_UPLOAD_PRESET"),
			ApiHost:      valueOrDefault(getenv("CLOUDINARY_API_HOST"), "https://api.cloudinary.com"),
		},
		Yield: YieldConfig{
			AnnualRate: DefaultAnnualYieldRate,
		},
		Report: ReportConfig{
			EmailTo:   getenv("REPORT_EMAIL_TO"),
			EmailFrom: getenv("REPORT_EMAIL_FROM"),
			AwsRegion: valueOrDefault(getenv("AWS_REGION"), "us-east-1"),
		},
		getenv: getenv,
	}

	if raw := getenv("ANNUAL_YIELD_RATE"); raw != "" {
		// zero and non-finite values fall back like an unparsable one
		rate, err := strconv.ParseFloat(raw, 64)
		if err == nil && rate != 0 && !math.IsNaN(rate) && !math.IsInf(rate, 0) {
			c.Yield.AnnualRate = rate
			c.Yield.RateFromEnv = true
		}
	}

	if raw := getenv("CHECK_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CHECK_TIMEOUT %q: %w", raw, err)
		}
		c.CheckTimeout = timeout
	}

	return c, nil
}

// MapEnv adapts a map to the getenv signature
func MapEnv(m map[string]string) func(string) string {
	return func(k string) string {
		return m[k]
	}
}

func valueOrDefault(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func StringPointer(s string) *string {
	return &s
}
