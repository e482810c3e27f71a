package enums

import "fmt"

// BundleCategory groups bundles into the closed set the admin UI exposes.
type BundleCategory string

const (
	BundleCategoryDrivers BundleCategory = "Drivers"
	BundleCategoryOffice  BundleCategory = "Office"
	BundleCategorySpecial BundleCategory = "Special Bundles"
)

var validBundleCategories = []BundleCategory{
	BundleCategoryDrivers,
	BundleCategoryOffice,
	BundleCategorySpecial,
}

// String implements fmt.Stringer.
func (b BundleCategory) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BundleCategory.
func (b BundleCategory) IsValid() bool {
	for _, candidate := range validBundleCategories {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBundleCategory converts raw input into a BundleCategory.
func ParseBundleCategory(value string) (BundleCategory, error) {
	for _, candidate := range validBundleCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid bundle category %q", value)
}
