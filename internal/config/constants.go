package config

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2333
	defaultEnv        = "development"
	defaultTimezone   = "Asia/Manila"

	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "notedesk"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 2
	defaultDialTimeout  = "5s"

	// DefaultBackupFilename is the fixed object name the snapshot blob is
	// written under; each backup replaces the previous one.
	DefaultBackupFilename = "workspace-notes.json"
)
