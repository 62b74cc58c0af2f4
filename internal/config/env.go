package config

import (
	"bufio"
	"io"
	"os"
	"strings"

	"epdctl/internal/log"
)

// Credential field limits in bytes, excluding any terminator.
const (
	MaxSSIDLen     = 31
	MaxPasswordLen = 63
)

// Credentials are the network credentials read from a KEY=value file.
type Credentials struct {
	SSID     string
	Password string
}

// Redacted returns a copy safe for logs and API responses.
func (c Credentials) Redacted() Credentials {
	if c.Password != "" {
		c.Password = "********"
	}
	return c
}

// LoadCredentials reads a KEY=value credentials file.
func LoadCredentials(path string) (Credentials, error) {
	if path == "" {
		return Credentials{}, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return Credentials{}, err
	}
	defer f.Close()
	return ParseCredentials(f)
}

// ParseCredentials parses KEY=value lines. Blank lines, # comments, lines
// without '=' and unknown keys are skipped. Values lose one pair of matching
// surrounding quotes and are truncated to the field limits.
func ParseCredentials(r io.Reader) (Credentials, error) {
	var c Credentials
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		switch key {
		case "WIFI_SSID":
			c.SSID = truncate(value, MaxSSIDLen)
			log.Info("config: loaded WIFI_SSID", "ssid", c.SSID)
		case "WIFI_PASSWORD":
			c.Password = truncate(value, MaxPasswordLen)
			log.Info("config: loaded WIFI_PASSWORD", "password", "********")
		}
	}
	if err := sc.Err(); err != nil {
		return c, err
	}
	if c.SSID == "" {
		log.Warn("config: WIFI_SSID not set")
	}
	if c.Password == "" {
		log.Warn("config: WIFI_PASSWORD not set")
	}
	return c, nil
}

func unquote(v string) string {
	if len(v) > 1 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
