package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	DSN            string                `yaml:"dsn"` // MySQL DSN, overrides Database when set
	RedisURL       string                `yaml:"redis_url"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Env            string                `yaml:"env"` // "development" | "production"
	AllowedOrigins []string              `yaml:"allowed_origins"`
	Timezone       string                `yaml:"timezone"`
	AI             AIConfig              `yaml:"ai"`
	Backup         BackupConfig          `yaml:"backup"`
}

type DatabaseRuntimeConfig struct {
	DSN          string            `yaml:"dsn"`
	Host         string            `yaml:"host"`
	Port         int               `yaml:"port"`
	User         string            `yaml:"user"`
	Password     string            `yaml:"password"`
	Name         string            `yaml:"name"`
	Charset      string            `yaml:"charset"`
	Loc          string            `yaml:"loc"`
	MaxOpenConns int               `yaml:"max_open_conns"`
	MaxIdleConns int               `yaml:"max_idle_conns"`
	Params       map[string]string `yaml:"params"`
}

// AIConfig configures the server-side chat proxy. Provider credentials live
// here, never in the browser.
type AIConfig struct {
	Providers    []AIProvider `yaml:"providers"`
	SystemPrompt string       `yaml:"system_prompt"`
}

type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // openai | openai-compatible | anthropic | gemini
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// BackupConfig selects where the note snapshot blob lives.
type BackupConfig struct {
	Dir      string    `yaml:"dir"`      // local store directory
	Filename string    `yaml:"filename"` // fixed object name, default workspace-notes.json
	S3       S3Options `yaml:"s3"`
}

type S3Options struct {
	Enable          bool   `yaml:"enable"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}
