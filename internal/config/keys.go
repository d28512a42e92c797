package config

const (
	KeyPublishableKey = "bento_publishable_key"
	KeySecretKey      = "bento_secret_key"
	KeySiteUUID       = "bento_site_uuid"
	KeyLogLevel       = "log_level"
)
