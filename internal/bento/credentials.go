package bento

import (
	"errors"
	"strings"
)

// Credentials is the triple every delegated call needs. Values are read from
// process configuration at invocation time and never cached here.
type Credentials struct {
	PublishableKey string
	SecretKey      string
	SiteUUID       string
}

// Validate reports every missing value by its environment variable name so a
// single failed invocation tells the operator the full fix.
func (c Credentials) Validate() error {
	var missing []string
	if c.PublishableKey == "" {
		missing = append(missing, "BENTO_PUBLISHABLE_KEY")
	}
	if c.SecretKey == "" {
		missing = append(missing, "BENTO_SECRET_KEY")
	}
	if c.SiteUUID == "" {
		missing = append(missing, "BENTO_SITE_UUID")
	}
	if len(missing) > 0 {
		return errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}
	return nil
}
