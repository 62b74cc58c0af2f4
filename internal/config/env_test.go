package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCredentials(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want Credentials
	}{
		{
			name: "plain",
			in:   "WIFI_SSID=home\nWIFI_PASSWORD=hunter2\n",
			want: Credentials{SSID: "home", Password: "hunter2"},
		},
		{
			name: "comments blanks and junk",
			in:   "# wifi\n\nnot a pair\nOTHER=1\n  WIFI_SSID = spaced out  \r\n",
			want: Credentials{SSID: "spaced out"},
		},
		{
			name: "quotes",
			in:   "WIFI_SSID=\"my net\"\nWIFI_PASSWORD='p=w'\n",
			want: Credentials{SSID: "my net", Password: "p=w"},
		},
		{
			name: "mismatched quotes kept",
			in:   "WIFI_SSID=\"half'\n",
			want: Credentials{SSID: "\"half'"},
		},
		{
			name: "single quote char kept",
			in:   "WIFI_SSID=\"\n",
			want: Credentials{SSID: "\""},
		},
		{
			name: "truncation",
			in:   "WIFI_SSID=" + strings.Repeat("s", 40) + "\nWIFI_PASSWORD=" + strings.Repeat("p", 70) + "\n",
			want: Credentials{SSID: strings.Repeat("s", MaxSSIDLen), Password: strings.Repeat("p", MaxPasswordLen)},
		},
		{
			name: "last value wins",
			in:   "WIFI_SSID=a\nWIFI_SSID=b\n",
			want: Credentials{SSID: "b"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCredentials(strings.NewReader(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("ParseCredentials() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestLoadCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("WIFI_SSID=lab\nWIFI_PASSWORD=x\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCredentials(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.SSID != "lab" {
		t.Errorf("SSID = %q", c.SSID)
	}
	if r := c.Redacted(); r.Password != "********" || r.SSID != "lab" {
		t.Errorf("Redacted() = %+v", r)
	}
	if _, err := LoadCredentials(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file accepted")
	}
}
