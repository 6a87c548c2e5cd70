// Package config loads the wordnet runtime configuration from flags,
// WORDNET_* environment variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "wordnet"

// Keys shared by flags, environment variables and the config file.
const (
	KeyConfig          = "config"
	KeySynsets         = "synsets"
	KeyHypernyms       = "hypernyms"
	KeyLogLevel        = "log-level"
	KeyLogFormat       = "log-format"
	KeyListenAddr      = "listen-addr"
	KeyCacheSize       = "cache-size"
	KeyShutdownTimeout = "shutdown-timeout"
	KeyTraceExporter   = "trace-exporter"
	KeyMetricExporter  = "metric-exporter"
	KeyOTLPEndpoint    = "otlp-endpoint"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the decoded configuration.
type Config struct {
	Synsets         string        `mapstructure:"synsets" yaml:"synsets" validate:"required,file"`
	Hypernyms       string        `mapstructure:"hypernyms" yaml:"hypernyms" validate:"required,file"`
	LogLevel        string        `mapstructure:"log-level" yaml:"log-level" validate:"oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log-format" yaml:"log-format" validate:"oneof=json console"`
	ListenAddr      string        `mapstructure:"listen-addr" yaml:"listen-addr" validate:"required,listenaddr"`
	CacheSize       int           `mapstructure:"cache-size" yaml:"cache-size" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" yaml:"shutdown-timeout" validate:"gt=0"`
	TraceExporter   string        `mapstructure:"trace-exporter" yaml:"trace-exporter" validate:"oneof=none stdout otlp"`
	MetricExporter  string        `mapstructure:"metric-exporter" yaml:"metric-exporter" validate:"oneof=none prometheus"`
	OTLPEndpoint    string        `mapstructure:"otlp-endpoint" yaml:"otlp-endpoint" validate:"required_if=TraceExporter otlp"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("listenaddr", validateListenAddr)
}

// validateListenAddr accepts host:port pairs such as ":8080" or "localhost:80".
func validateListenAddr(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())

	return err == nil && port != ""
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// SetDefaults registers the default of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySynsets, "")
	v.SetDefault(KeyHypernyms, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyListenAddr, ":8080")
	v.SetDefault(KeyCacheSize, 4096)
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.SetDefault(KeyTraceExporter, "none")
	v.SetDefault(KeyMetricExporter, "prometheus")
	v.SetDefault(KeyOTLPEndpoint, "")
}

// PersistentFlags adds the flags every command accepts.
func PersistentFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "path to a YAML config file ($WORDNET_CONFIG)")
	fs.String(KeySynsets, "", "path to the synsets file, optionally gzipped ($WORDNET_SYNSETS)")
	fs.String(KeyHypernyms, "", "path to the hypernyms file, optionally gzipped ($WORDNET_HYPERNYMS)")
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn or error ($WORDNET_LOG_LEVEL)")
	fs.String(KeyLogFormat, "json", "log format: json or console ($WORDNET_LOG_FORMAT)")
	fs.Int(KeyCacheSize, 4096, "number of pair distances cached for outcast queries ($WORDNET_CACHE_SIZE)")
}

// ServeFlags adds the flags of the serve command.
func ServeFlags(fs *pflag.FlagSet) {
	fs.String(KeyListenAddr, ":8080", "address the HTTP server listens on ($WORDNET_LISTEN_ADDR)")
	fs.Duration(KeyShutdownTimeout, 10*time.Second, "graceful shutdown deadline ($WORDNET_SHUTDOWN_TIMEOUT)")
	fs.String(KeyTraceExporter, "none", "trace exporter: none, stdout or otlp ($WORDNET_TRACE_EXPORTER)")
	fs.String(KeyMetricExporter, "prometheus", "metric exporter: none or prometheus ($WORDNET_METRIC_EXPORTER)")
	fs.String(KeyOTLPEndpoint, "", "OTLP gRPC endpoint for traces ($WORDNET_OTLP_ENDPOINT)")
}

// Decode reads the config file named by the "config" key, if any, and
// decodes every key into a Config without validating it.
func Decode(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Load is Decode followed by Validate.
func Load(v *viper.Viper) (*Config, error) {
	cfg, err := Decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
			}

			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, ", "))
		}

		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Write renders c as YAML.
func Write(w io.Writer, c *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}
