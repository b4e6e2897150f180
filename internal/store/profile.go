package store

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/footprint/internal/refdata"
)

// ErrEmailRequired is returned when a profile has no email address.
var ErrEmailRequired = errors.New("Please enter your email address to continue.") //nolint:revive,staticcheck // User-facing message.

// Profile identifies the user a report is for.
type Profile struct {
	Email   string `json:"email" validate:"required"`
	City    string `json:"city"`
	Country string `json:"country,omitempty"`
}

//nolint:gochecknoglobals // validator caches struct metadata; one instance is the documented usage.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateProfile trims p, checks that the email is present and fills the
// country from the city table when it is empty. Known city and country names
// are rewritten to their display spelling.
func ValidateProfile(p Profile) (Profile, error) {
	p.Email = strings.TrimSpace(p.Email)
	p.City = strings.TrimSpace(p.City)
	p.Country = strings.TrimSpace(p.Country)

	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Email" {
					return p, ErrEmailRequired
				}
			}
		}
		return p, err
	}

	if name, ok := refdata.Canonical(p.City); ok {
		p.City = name
	}
	if p.Country == "" {
		p.Country = refdata.LookupCity(p.City).Country
	} else if name, ok := refdata.CanonicalCountry(p.Country); ok {
		p.Country = name
	}
	return p, nil
}
