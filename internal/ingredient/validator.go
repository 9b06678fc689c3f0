package ingredient

import (
	"math"
	"strings"

	"github.com/patukaelmago/Recipe-Cost-Manager/internal/apperr"
)

// ValidateCreate checks every field of a catalog create.
// First violation wins.
func ValidateCreate(in CreateInput) error {
	if err := validateName(in.Name); err != nil {
		return err
	}
	if err := validateUnit(in.Unit); err != nil {
		return err
	}
	if err := validatePackageSize(in.PackageSize); err != nil {
		return err
	}
	return validatePrice(in.Price)
}

// ValidateUpdate checks only the fields present in a partial update.
func ValidateUpdate(in UpdateInput) error {
	if in.Name != nil {
		if err := validateName(*in.Name); err != nil {
			return err
		}
	}
	if in.Unit != nil {
		if err := validateUnit(*in.Unit); err != nil {
			return err
		}
	}
	if in.PackageSize != nil {
		if err := validatePackageSize(*in.PackageSize); err != nil {
			return err
		}
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return err
		}
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("name", "name is required")
	}
	return nil
}

func validateUnit(unit string) error {
	if strings.TrimSpace(unit) == "" {
		return apperr.Validation("unit", "unit is required")
	}
	return nil
}

func validatePackageSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return apperr.Validation("packageSize", "packageSize must be greater than 0")
	}
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return apperr.Validation("price", "price must not be negative")
	}
	return nil
}
