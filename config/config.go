package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Catalog sources understood by Site.CatalogSource.
const (
	CatalogEmbedded = "embedded"
	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// GetSeconds reads an integer number of seconds as a duration.
func GetSeconds(config map[string]string, key string, defaultSeconds int) time.Duration {
	return time.Duration(GetInt(config, key, defaultSeconds)) * time.Second
}

// GetList splits a comma separated value, dropping empty items.
func GetList(config map[string]string, key string) []string {
	raw := GetString(config, key, "")
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Site holds the settings the portfolio server reads at startup.
type Site struct {
	Port            string
	Title           string
	BaseHref        string // written into the document shell as <base href>; empty for none
	CatalogSource   string
	CatalogFile     string
	AcceptedOrigins []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	SessionTTL      time.Duration
}

// LoadSite builds Site from an environment map.
func LoadSite(c map[string]string) Site {
	return Site{
		Port:            GetString(c, "PORT", "8080"),
		Title:           GetString(c, "SITE_TITLE", "Ryan Son | Full-Stack Developer"),
		BaseHref:        GetString(c, "BASE_HREF", ""),
		CatalogSource:   strings.ToLower(GetString(c, "CATALOG_SOURCE", CatalogEmbedded)),
		CatalogFile:     GetString(c, "CATALOG_FILE", "catalog.yaml"),
		AcceptedOrigins: GetList(c, "ACCEPTED_ORIGINS"),
		ReadTimeout:     GetSeconds(c, "READ_TIMEOUT_SECONDS", 180),
		WriteTimeout:    GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeout:     GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180),
		SessionTTL:      GetSeconds(c, "SESSION_TTL_SECONDS", 1800),
	}
}
