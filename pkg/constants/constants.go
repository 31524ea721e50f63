package constants

const (
	// AppName is the CLI binary name.
	AppName = "hhpt-site"

	// ConfigName and ConfigFormat describe the config file viper looks for.
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. HHPT_EMAIL_SMTP_HOST overrides email.smtp.host.
	EnvPrefix = "HHPT"
)
