package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// TagList is a comma separated list of tags.
// It implements the flag.Value interface.
type TagList []string

// parseFlags parses command line arguments into a [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout whole merge request timeout (e.g., "30s", "1m")
//	-read-header-timeout request header read timeout
//	-shutdown-timeout graceful shutdown timeout
//	-fetch-timeout per-fetch timeout
//	-fetch-retries extra attempts for a failed fetch
//	-max-redirects redirect limit for fetches
//	-max-body-bytes fetched document size limit
//	-user-agent User-Agent sent with fetches
//	-allow-comments accept JSON with comments
//	-selector-tags comma separated selector group tags
//	-log-level minimum log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var selectorTags TagList
	var jsonConfigPath string
	var logLevel string
	var requestTimeout, readHeaderTimeout, shutdownTimeout time.Duration
	var fetchTimeout time.Duration
	var fetchRetries, maxRedirects int
	var maxBodyBytes int64
	var userAgent string
	var allowComments bool

	fs := flag.NewFlagSet("go-sub-merger", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Merge request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Request header read timeout")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Timeout of a single document fetch")
	fs.IntVar(&fetchRetries, "fetch-retries", 0, "Extra attempts for a failed fetch")
	fs.IntVar(&maxRedirects, "max-redirects", 0, "Redirect limit for fetches")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Fetched document size limit in bytes")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent header for fetches")
	fs.BoolVar(&allowComments, "allow-comments", false, "Accept JSON with comments and trailing commas")
	fs.Var(&selectorTags, "selector-tags", "Comma separated tags of groups that receive node tags")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			RequestTimeout:    requestTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			ShutdownTimeout:   shutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: fetchTimeout,
			RetryCount:     fetchRetries,
			MaxRedirects:   maxRedirects,
			MaxBodyBytes:   maxBodyBytes,
			UserAgent:      userAgent,
			AllowComments:  allowComments,
		},
		Merge: Merge{
			SelectorTags: selectorTags,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// String joins the tags with commas.
func (l *TagList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set splits s on commas and appends the trimmed tags.
func (l *TagList) Set(s string) error {
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return errors.New("empty selector tag")
		}
		*l = append(*l, tag)
	}
	return nil
}
