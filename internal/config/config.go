package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bentonow/bento-mcp/internal/bento"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
}

func PublishableKey() string { return viper.GetString(KeyPublishableKey) }
func SecretKey() string      { return viper.GetString(KeySecretKey) }
func SiteUUID() string       { return viper.GetString(KeySiteUUID) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }

// BentoCredentials reads the credential triple at call time. Validation is
// deferred to the dispatcher so every tool reports missing values the same way.
func BentoCredentials() bento.Credentials {
	return bento.Credentials{
		PublishableKey: PublishableKey(),
		SecretKey:      SecretKey(),
		SiteUUID:       SiteUUID(),
	}
}
