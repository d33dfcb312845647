// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package configx

import (
	"github.com/spf13/pflag"

	"github.com/clinia/featuretoggles/loggerx"
)

type (
	OptionModifier func(p *Provider)
)

// WithConfigFiles loads the "features" map of each JSON or YAML file, later files winning.
func WithConfigFiles(files ...string) OptionModifier {
	return func(p *Provider) {
		p.files = append(p.files, files...)
	}
}

// WithFlags reads config files and feature overrides from a flag set prepared with RegisterFlags.
func WithFlags(flags *pflag.FlagSet) OptionModifier {
	return func(p *Provider) {
		p.flags = flags
	}
}

func WithLogger(l *loggerx.Logger) OptionModifier {
	return func(p *Provider) {
		p.logger = l
	}
}

// WithBaseValues sets values that every other source overrides.
func WithBaseValues(values map[string]bool) OptionModifier {
	return func(p *Provider) {
		for key, value := range values {
			p.baseValues[key] = value
		}
	}
}

// WithValue forces a value over every other source.
func WithValue(key string, value bool) OptionModifier {
	return func(p *Provider) {
		p.forcedValues[key] = value
	}
}
