package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the prefsd flags in args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d storage DSN
//	-c/-config json file path with configs
//	-env-file .env file path
//	-delimiter token delimiter
//	-key-index default key index
//	-backup-dir key backup directory
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-autosave-interval preference flush interval (e.g., "1m")
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := newFlagSet()

	var serverAddress NetAddress
	var cfg StructuredConfig
	var keyIndex int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Storage DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.EnvFilePath, "env-file", "", ".env file path")
	fs.StringVar(&cfg.Prefs.Delimiter, "delimiter", "", "Token delimiter")
	fs.IntVar(&keyIndex, "key-index", 0, "Default key index")
	fs.StringVar(&cfg.Backup.Dir, "backup-dir", "", "Key backup directory")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Workers.AutoSaveInterval, "autosave-interval", 0, "Preference flush interval (e.g., 1m)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Prefs.DefaultKeyIndex = keyIndex
	return &cfg, nil
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("prefsd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// envFileFromArgs finds -env-file before the full flag parse, since the
// .env file has to be loaded before the environment is read.
func envFileFromArgs(args []string) string {
	for i, a := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if name != "env-file" || !strings.HasPrefix(a, "-") {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on every interface. It validates the port range,
// checks IP correctness unless host is "localhost", and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
