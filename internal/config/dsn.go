package config

import (
	"fmt"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
)

// DSNValue assembles a MySQL DSN from the structured database section.
// An explicit dsn wins over host/port parts.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}

	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = defaultDBHost
	}
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := strings.TrimSpace(c.User)
	if user == "" {
		user = defaultDBUser
	}
	password := c.Password
	if strings.TrimSpace(password) == "" {
		password = defaultDBPassword
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		name = defaultDBName
	}
	charset := strings.TrimSpace(c.Charset)
	if charset == "" {
		charset = defaultDBCharset
	}
	loc := strings.TrimSpace(c.Loc)
	if loc == "" {
		loc = defaultDBLoc
	}

	dsnCfg := mysqlDriver.NewConfig()
	dsnCfg.User = user
	dsnCfg.Passwd = password
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = fmt.Sprintf("%s:%d", host, port)
	dsnCfg.DBName = name
	dsnCfg.ParseTime = true
	dsnCfg.Params = map[string]string{
		"charset": charset,
		"loc":     loc,
		"timeout": defaultDialTimeout,
	}
	for key, value := range c.Params {
		k := strings.TrimSpace(key)
		v := strings.TrimSpace(value)
		if k != "" && v != "" {
			dsnCfg.Params[k] = v
		}
	}

	return dsnCfg.FormatDSN()
}
