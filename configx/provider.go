package configx

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"

	"github.com/clinia/featuretoggles/errorx"
	"github.com/clinia/featuretoggles/featureflagx"
	"github.com/clinia/featuretoggles/loggerx"
)

const featuresKey = "features"

// Provider assembles the initial flag table from base values, config files, command line
// overrides and forced values, in that order. It only reads, nothing is written back.
type Provider struct {
	files        []string
	flags        *pflag.FlagSet
	baseValues   map[string]bool
	forcedValues map[string]bool
	logger       *loggerx.Logger
}

func newProvider(opts ...OptionModifier) *Provider {
	p := &Provider{
		baseValues:   map[string]bool{},
		forcedValues: map[string]bool{},
		logger:       loggerx.NewNoop(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// NewRouter builds a Router seeded with the configured flag values.
func NewRouter(ctx context.Context, opts ...OptionModifier) (*featureflagx.Router, error) {
	values, err := Values(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return featureflagx.New(values)
}

// Values loads and validates the configured flag values.
func Values(ctx context.Context, opts ...OptionModifier) (map[string]bool, error) {
	return newProvider(opts...).load(ctx)
}

func (p *Provider) load(ctx context.Context) (map[string]bool, error) {
	k := koanf.New(".")

	if err := p.loadValues(k, p.baseValues); err != nil {
		return nil, err
	}

	files := lo.Uniq(p.files)
	if p.flags != nil {
		fromFlags, err := p.flags.GetStringSlice(ConfigFlagName)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		files = lo.Uniq(append(files, fromFlags...))
	}
	for _, f := range files {
		parser, err := parserFor(f)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(f), parser); err != nil {
			return nil, errors.Wrapf(err, "unable to load config file %s", f)
		}
	}

	if p.flags != nil {
		overrides, err := p.flagOverrides()
		if err != nil {
			return nil, err
		}
		if err := p.loadValues(k, overrides); err != nil {
			return nil, err
		}
	}

	if err := p.loadValues(k, p.forcedValues); err != nil {
		return nil, err
	}

	if err := validate(ctx, k.Raw()); err != nil {
		p.logger.WithError(err).Error(ctx, "the feature flag configuration is invalid", attribute.StringSlice("files", files))
		return nil, err
	}

	values, err := toBoolMap(k.Raw()[featuresKey])
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "feature flag configuration loaded",
		attribute.StringSlice("files", files),
		attribute.Int("count", len(values)))
	return values, nil
}

func (p *Provider) loadValues(k *koanf.Koanf, values map[string]bool) error {
	if len(values) == 0 {
		return nil
	}
	features := make(map[string]interface{}, len(values))
	for key, value := range values {
		features[key] = value
	}
	// An empty delimiter keeps dotted flag names as single keys.
	return errors.WithStack(k.Load(confmap.Provider(map[string]interface{}{featuresKey: features}, ""), nil))
}

func (p *Provider) flagOverrides() (map[string]bool, error) {
	raw, err := p.flags.GetStringToString(FeatureFlagName)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	overrides := make(map[string]bool, len(raw))
	for key, value := range raw {
		b, err := cast.ToBoolE(value)
		if err != nil {
			return nil, errorx.InvalidArgumentErrorf("--%s %s=%s is not a boolean", FeatureFlagName, key, value)
		}
		overrides[key] = b
	}
	return overrides, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return kjson.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errorx.InvalidArgumentErrorf("unsupported config file extension for %s, expected .json, .yaml or .yml", path)
	}
}

func validate(ctx context.Context, doc map[string]interface{}) error {
	schema, err := compileSchema(ctx, []byte(FeaturesSchema))
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := schema.Validate(bytes.NewReader(raw)); err != nil {
		return errorx.InvalidArgumentErrorf("invalid feature flag configuration: %s", err)
	}
	return nil
}

func toBoolMap(features interface{}) (map[string]bool, error) {
	if features == nil {
		return map[string]bool{}, nil
	}
	m, err := cast.ToStringMapE(features)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	values := make(map[string]bool, len(m))
	for key, value := range m {
		b, err := cast.ToBoolE(value)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		values[key] = b
	}
	return values, nil
}
