package config

import (
	"fmt"

	"gopkg.in/go-playground/validator.v9"
)

var validate = validator.New()

// Validate checks the structure of the file. Whether a resolved launch
// configuration is complete is checked by CheckLaunchable.
func Validate(c *Config) error {
	return validate.Struct(c)
}

// ValidateSpotPrice checks a price given outside the file with the same
// rule as LaunchConfiguration.SpotPrice.
func ValidateSpotPrice(price string) error {
	if err := validate.Var(price, "omitempty,numeric"); err != nil {
		return fmt.Errorf("invalid spot price %q: must be a decimal number", price)
	}
	return nil
}
