// Package portal loads the portald server configuration.
//
// The yaml file carries everything that is safe to commit; credentials come
// from the process environment at load time and never from the file.
package portal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// ServerPort is the listen port, without colon.
	ServerPort string `yaml:"port"`

	Database   DatabaseConfig   `yaml:"database"`
	Generation GenerationConfig `yaml:"generation"`
	Pricing    PricingConfig    `yaml:"pricing"`

	// Credentials is filled from the environment, not the file.
	Credentials Credentials `yaml:"-"`
}

type DatabaseConfig struct {
	URI string `yaml:"uri"`
}

type GenerationConfig struct {
	TextModel      string `yaml:"textModel"`
	ImageModel     string `yaml:"imageModel"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

func (g GenerationConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

type PricingConfig struct {
	// AutoApplyThresholdPercent: owner price requests with an absolute
	// percentage change at or below this are applied without staff review.
	AutoApplyThresholdPercent float64 `yaml:"autoApplyThresholdPercent"`
}

type Credentials struct {
	GenAIAPIKey       string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioWhatsAppNum string
	JWTSecret         string
}

// Load reads the yaml file and merges credentials from the environment.
func Load(filepath string) (*Config, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	conf, err := Unmarshal(content)
	if err != nil {
		return nil, err
	}
	conf.Credentials = CredentialsFromEnv()
	return conf, nil
}

func Unmarshal(content []byte) (*Config, error) {
	var out Config
	if err := yaml.Unmarshal(content, &out); err != nil {
		return nil, err
	}
	if out.ServerPort == "" {
		out.ServerPort = "8080"
	}
	if out.Database.URI == "" {
		return nil, fmt.Errorf("config: database.uri is required")
	}
	if out.Generation.TextModel == "" {
		out.Generation.TextModel = "gemini-2.0-flash"
	}
	if out.Generation.ImageModel == "" {
		out.Generation.ImageModel = "imagen-3.0-generate-002"
	}
	if out.Pricing.AutoApplyThresholdPercent <= 0 {
		out.Pricing.AutoApplyThresholdPercent = 5
	}
	return &out, nil
}

func CredentialsFromEnv() Credentials {
	return Credentials{
		GenAIAPIKey:       os.Getenv("GENAI_API_KEY"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNum: os.Getenv("TWILIO_WHATSAPP_FROM"),
		JWTSecret:         os.Getenv("PORTAL_JWT_SECRET"),
	}
}
