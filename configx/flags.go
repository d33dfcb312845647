package configx

import (
	"github.com/spf13/pflag"
)

const (
	ConfigFlagName  = "config"
	FeatureFlagName = "feature"
)

// RegisterFlags adds the --config and --feature flags read by WithFlags.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSliceP(ConfigFlagName, "c", nil, `Path to a JSON or YAML file holding a "features" map, can be repeated`)
	fs.StringToString(FeatureFlagName, nil, "Feature flag override, e.g. --feature next-gen-ecomm=true")
}
