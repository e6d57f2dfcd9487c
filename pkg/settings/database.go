package settings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/doodlesbykumbi/authgate/pkg/vartype"
)

// Snapshotter returns the variables under a prefix.
type Snapshotter interface {
	Snapshot(prefix string) map[string]string
}

// Database holds the PostgreSQL connection settings.
type Database struct {
	Name         string `env:"DB_NAME" json:"name"`
	Host         string `env:"DB_HOST" json:"host"`
	Port         uint16 `env:"DB_PORT" json:"port"`
	User         string `env:"DB_USER" json:"user"`
	Password     string `env:"DB_PASS" json:"password"`
	SSLMode      string `env:"DB_SSL_MODE" json:"ssl_mode"`
	RootCertPath string `env:"PATH_TO_DB_SSL_ROOT_CERT" json:"ssl_root_cert"`
}

// Decode reads the database settings under prefix from source.
func Decode(source Snapshotter, prefix string) (*Database, error) {
	var db Database
	err := env.ParseWithOptions(&db, env.Options{
		Environment:     source.Snapshot(prefix),
		Prefix:          prefix,
		RequiredIfNoDef: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode database settings: %w", err)
	}
	return &db, nil
}

// Redacted returns a copy safe for printing.
func (d Database) Redacted() Database {
	if d.Password != "" {
		d.Password = vartype.Redacted
	}
	return d
}

// String never includes the password.
func (d Database) String() string {
	r := d.Redacted()
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", r.User, r.Password, r.Host, r.Port, r.Name, r.SSLMode)
}

// Fields returns the redacted settings as log fields.
func (d Database) Fields() logrus.Fields {
	r := d.Redacted()
	return logrus.Fields{
		"db_name":       r.Name,
		"db_host":       r.Host,
		"db_port":       r.Port,
		"db_user":       r.User,
		"db_ssl_mode":   r.SSLMode,
		"ssl_root_cert": r.RootCertPath,
	}
}

// FormatText renders the redacted settings as an aligned table.
func (d Database) FormatText() string {
	r := d.Redacted()
	rows := [][2]string{
		{"name", r.Name},
		{"host", r.Host},
		{"port", strconv.Itoa(int(r.Port))},
		{"user", r.User},
		{"password", r.Password},
		{"ssl_mode", r.SSLMode},
		{"ssl_root_cert", r.RootCertPath},
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s %s\n", "SETTING", "VALUE"))
	sb.WriteString(fmt.Sprintf("%-20s %s\n", "-------", "-----"))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-20s %s\n", row[0], row[1]))
	}
	return sb.String()
}

// FormatJSON renders the redacted settings as indented JSON.
func (d Database) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(d.Redacted(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
