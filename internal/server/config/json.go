package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/syncmarks/internal/flagx"
	"github.com/dmitrijs2005/syncmarks/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "30s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr       string         `json:"endpoint_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	DBConnTimeout      timex.Duration `json:"db_conn_timeout"`
	AllowNewSyncs      *bool          `json:"allow_new_syncs"`
	MaxSyncs           *int           `json:"max_syncs"`
	DailyNewSyncsLimit *int           `json:"daily_new_syncs_limit"`
	StatusOffline      *bool          `json:"status_offline"`
	StatusMessage      *string        `json:"status_message"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// Pointer fields distinguish "absent" from zero values so a JSON file can
// turn the create gates off explicitly (allow_new_syncs=false, max_syncs=0)
// without clobbering defaults when omitted.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.DBConnTimeout.Duration != 0 {
		config.DBConnTimeout = time.Duration(c.DBConnTimeout.Duration)
	}
	if c.AllowNewSyncs != nil {
		config.AllowNewSyncs = *c.AllowNewSyncs
	}
	if c.MaxSyncs != nil {
		config.MaxSyncs = *c.MaxSyncs
	}
	if c.DailyNewSyncsLimit != nil {
		config.DailyNewSyncsLimit = *c.DailyNewSyncsLimit
	}
	if c.StatusOffline != nil {
		config.StatusOffline = *c.StatusOffline
	}
	if c.StatusMessage != nil {
		config.StatusMessage = *c.StatusMessage
	}
}
