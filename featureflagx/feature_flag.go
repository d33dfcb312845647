package featureflagx

import (
	"strings"

	"github.com/clinia/featuretoggles/errorx"
)

// FeatureFlag is the case-sensitive name of a boolean toggle.
type FeatureFlag string

func (ff FeatureFlag) String() string {
	return string(ff)
}

// Validate fails with an invalid argument error when the name is empty or only whitespace.
func (ff FeatureFlag) Validate() error {
	if strings.TrimSpace(string(ff)) == "" {
		return errorx.InvalidArgumentErrorf("feature flag name must not be blank, got %q", string(ff))
	}
	return nil
}
