package config

import (
	"net/url"
	"sort"
	"strings"
)

// DatabaseParts are the discrete connection settings a platform binding
// usually injects (DB_HOST, DB_PORT, ...).
type DatabaseParts struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
	SSLMode  string
	Params   map[string]string
}

// BuildDatabaseURL assembles a postgresql:// URL from parts. Credentials and
// database name are percent-encoded; the host is used verbatim. Returns "" when the
// host, database or user is missing.
func BuildDatabaseURL(p DatabaseParts) string {
	if p.Host == "" || p.Database == "" || p.Username == "" {
		return ""
	}

	port := p.Port
	if port == "" {
		port = defaultDBPort
	}

	var b strings.Builder
	b.WriteString("postgresql://")
	b.WriteString(escapeSecret(p.Username))
	b.WriteByte(':')
	b.WriteString(escapeSecret(p.Password))
	b.WriteByte('@')
	b.WriteString(p.Host)
	b.WriteByte(':')
	b.WriteString(port)
	b.WriteByte('/')
	b.WriteString(escapeSecret(p.Database))

	q := url.Values{}
	if p.SSLMode != "" {
		q.Set("sslmode", p.SSLMode)
	}
	keys := make([]string, 0, len(p.Params))
	for k := range p.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, p.Params[k])
	}
	if len(q) > 0 {
		b.WriteByte('?')
		b.WriteString(q.Encode())
	}
	return b.String()
}

// escapeSecret percent-encodes every reserved character, including ':', '@'
// and '/'.
func escapeSecret(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
