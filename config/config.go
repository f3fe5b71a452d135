package config

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

// SysConfig holds process level settings.
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// WebConfig holds the HTTP listener settings. PublicURL is the external
// base URL used when rendering absolute links (sitemap).
type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	PublicURL string `yaml:"public_url" json:"public_url"`
}

// DBConfig holds the relational database settings.
type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// LogConfig holds zap logger settings.
type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// SeedConfig controls startup seeding of empty catalog tables.
type SeedConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

type AppConfig struct {
	System   SysConfig  `yaml:"system" json:"system"`
	Web      WebConfig  `yaml:"web" json:"web"`
	Database DBConfig   `yaml:"database" json:"database"`
	Logger   LogConfig  `yaml:"logger" json:"logger"`
	Seed     SeedConfig `yaml:"seed" json:"seed"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "HoneyExplorer",
		Location: "America/Chicago",
		Workdir:  "/var/honeyexplorer",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      8080,
		PublicURL: "https://rawhoneyguide.com",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "honeyexplorer",
		User:     "postgres",
		Passwd:   "postgres",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/honeyexplorer/honeyexplorer.log",
	},
	Seed: SeedConfig{Enabled: false},
}

func setEnvValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue == "true" || evalue == "1" || evalue == "on"
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue := os.Getenv(name); evalue != "" {
		var ival int
		if _, err := fmt.Sscanf(evalue, "%d", &ival); err == nil {
			*val = ival
		}
	}
}

// LoadConfig reads the YAML config file when present and applies
// environment overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	appconfig := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, appconfig); err != nil {
				fmt.Fprintf(os.Stderr, "parse config %s error: %v\n", cfile, err)
			}
		}
	}

	setEnvValue("HONEY_SYSTEM_WORKDIR", &appconfig.System.Workdir)
	setEnvValue("HONEY_SYSTEM_LOCATION", &appconfig.System.Location)
	setEnvBoolValue("HONEY_SYSTEM_DEBUG", &appconfig.System.Debug)

	setEnvValue("HONEY_WEB_HOST", &appconfig.Web.Host)
	setEnvIntValue("HONEY_WEB_PORT", &appconfig.Web.Port)
	setEnvValue("HONEY_WEB_PUBLIC_URL", &appconfig.Web.PublicURL)

	setEnvValue("HONEY_DB_TYPE", &appconfig.Database.Type)
	setEnvValue("HONEY_DB_HOST", &appconfig.Database.Host)
	setEnvIntValue("HONEY_DB_PORT", &appconfig.Database.Port)
	setEnvValue("HONEY_DB_NAME", &appconfig.Database.Name)
	setEnvValue("HONEY_DB_USER", &appconfig.Database.User)
	setEnvValue("HONEY_DB_PWD", &appconfig.Database.Passwd)
	setEnvBoolValue("HONEY_DB_DEBUG", &appconfig.Database.Debug)

	setEnvValue("HONEY_LOGGER_MODE", &appconfig.Logger.Mode)
	setEnvBoolValue("HONEY_LOGGER_FILE_ENABLE", &appconfig.Logger.FileEnable)
	setEnvValue("HONEY_LOGGER_FILENAME", &appconfig.Logger.Filename)

	setEnvBoolValue("HONEY_SEED_ENABLED", &appconfig.Seed.Enabled)

	return appconfig
}
