package sysinfo

import (
	"os"
	"os/user"
	"strings"
)

// Identity names the account and machine shown in the header line.
type Identity struct {
	User string
	Host string
}

// CurrentIdentity returns the user running the program and the local
// machine name. Missing values are reported as Unknown.
func CurrentIdentity() Identity {
	id := Identity{User: currentUser(), Host: Unknown}
	if host, err := os.Hostname(); err == nil && host != "" {
		id.Host = host
	}
	return id
}

func currentUser() string {
	for _, key := range []string{"USERNAME", "USER"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Windows reports DOMAIN\name.
		if i := strings.LastIndex(u.Username, `\`); i >= 0 {
			return u.Username[i+1:]
		}
		return u.Username
	}
	return Unknown
}
