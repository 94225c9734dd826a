package shared

import (
	"encoding/json"
	"log"
	"os"

	"github.com/tailscale/hujson"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../../dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc" // Path to config.json in development environment
)

type Config struct {
	Secrets           Secrets     `json:"-"`
	LogFile           string      `json:"log_file"`
	LogLevel          string      `json:"log_level"`
	ServicePort       uint        `json:"service_port"`
	DbFile            string      `json:"db_file"`
	Sites             []string    `json:"sites"`
	ConfigWiki        ConfigWiki  `json:"config_wiki"`
	CromApiUrl        string      `json:"crom_api_url"`
	CycleSchedule     string      `json:"cycle_schedule"` // cron expression; empty means run one cycle and exit
	UserAgent         string      `json:"user_agent"`
	RequestTimeoutSec int         `json:"request_timeout_sec"`
	RequestsPerSec    float64     `json:"requests_per_sec"`
	Email             EmailConfig `json:"email"`
	BlockedUsersFile  string      `json:"blocked_users_file"` // optional; one user id per line
	ProfileDir        string      `json:"profile_dir"`        // optional; empty disables goroutine dumps
	ProfileKeepDays   int         `json:"profile_keep_days"`
}

// ConfigWiki names the wiki and category where subscribers keep their
// notification preference pages.
type ConfigWiki struct {
	Url      string `json:"url"`
	Category string `json:"category"`
}

type EmailConfig struct {
	ApiUrl      string `json:"api_url"`
	FromName    string `json:"from_name"`
	FromAddress string `json:"from_address"`
}

type Secrets struct {
	WikidotUser string   `json:"wikidot_user"`
	WikidotPass string   `json:"wikidot_pass"`
	EmailApiKey string   `json:"email_api_key"`
	MetricsAuth string   `json:"metrics_auth"`
	ApiKeys     []string `json:"api_keys"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
