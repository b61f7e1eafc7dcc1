package main

import (
	"fmt"
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/jackc/pgcodec"
	apdnumeric "github.com/jackc/pgcodec/ext/apd-numeric"
	gofrsuuid "github.com/jackc/pgcodec/ext/gofrs-uuid"
	shopspringnumeric "github.com/jackc/pgcodec/ext/shopspring-numeric"
	"github.com/jackc/pgcodec/log/kitlogadapter"
	"github.com/jackc/pgcodec/log/log15adapter"
	"github.com/jackc/pgcodec/log/logrusadapter"
	"github.com/jackc/pgcodec/log/zapadapter"
	"github.com/jackc/pgcodec/log/zerologadapter"
	"github.com/jackc/pgcodec/tracelog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	log15 "gopkg.in/inconshreveable/log15.v2"
)

const (
	envLogLevel  = "PGCODEC_LOG_LEVEL"
	envLogFormat = "PGCODEC_LOG_FORMAT"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	numeric   string

	typeMap *pgcodec.Map
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pgcodec",
		Short: "Decode and inspect PostgreSQL binary values",
		Long: `pgcodec decodes PostgreSQL binary format values given as hex.

Commands:
  types      List the registered types
  decode     Decode a value and print it
  roundtrip  Decode a value, encode it again, and compare the bytes

Use "pgcodec [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOrDefault(envLogLevel, "none"), "log level (trace, debug, info, warn, error, none)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", envOrDefault(envLogFormat, "zerolog"), "logger (zerolog, zap, logrus, kitlog, log15)")
	cmd.PersistentFlags().StringVar(&opts.numeric, "numeric", "native", "Go type for numeric and numrange (native, shopspring, apd)")

	cmd.AddCommand(newTypesCmd(opts))
	cmd.AddCommand(newDecodeCmd(opts))
	cmd.AddCommand(newRoundTripCmd(opts))

	return cmd
}

func envOrDefault(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func (opts *rootOptions) setup(logOutput io.Writer) error {
	m := pgcodec.NewMap()
	gofrsuuid.Register(m)

	switch opts.numeric {
	case "native":
	case "shopspring":
		shopspringnumeric.Register(m)
	case "apd":
		apdnumeric.Register(m)
	default:
		return fmt.Errorf("invalid numeric type %q", opts.numeric)
	}

	level, err := tracelog.LogLevelFromString(opts.logLevel)
	if err != nil {
		return fmt.Errorf("%w: %q", err, opts.logLevel)
	}

	if level != tracelog.LogLevelNone {
		logger, err := newLogger(opts.logFormat, logOutput)
		if err != nil {
			return err
		}
		m.Tracer = &tracelog.TraceLog{Logger: logger, LogLevel: level}
	}

	opts.typeMap = m
	return nil
}

func newLogger(format string, w io.Writer) (tracelog.Logger, error) {
	switch format {
	case "zerolog":
		return zerologadapter.NewLogger(zerolog.New(w).With().Timestamp().Logger()), nil
	case "zap":
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(w), zapcore.DebugLevel)
		return zapadapter.NewLogger(zap.New(core)), nil
	case "logrus":
		l := logrus.New()
		l.Out = w
		l.Level = logrus.DebugLevel
		return logrusadapter.NewLogger(l), nil
	case "kitlog":
		return kitlogadapter.NewLogger(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))), nil
	case "log15":
		l := log15.New()
		l.SetHandler(log15.StreamHandler(w, log15.LogfmtFormat()))
		return log15adapter.NewLogger(l), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
