package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file. Durations are accepted as strings ("1h", "30s") or
// as integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey string   `json:"password_hash_key"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		TokenDuration   Duration `json:"token_duration"`
		Version         string   `json:"version"`
		LogLevel        string   `json:"log_level"`
		SeedTestUser    bool     `json:"seed_test_user"`

		Argon struct {
			Time    uint32 `json:"time"`
			Memory  uint32 `json:"memory"`
			Threads uint8  `json:"threads"`
		} `json:"argon,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN  string `json:"dsn"`
			Name string `json:"name"`
		} `json:"db,omitempty"`

		Timeout Duration `json:"timeout"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		BasePath       string   `json:"base_path"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHashKey: jsonCfg.App.PasswordHashKey,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			TokenDuration:   time.Duration(jsonCfg.App.TokenDuration),
			Version:         jsonCfg.App.Version,
			LogLevel:        jsonCfg.App.LogLevel,
			SeedTestUser:    jsonCfg.App.SeedTestUser,
			Argon: Argon{
				Time:    jsonCfg.App.Argon.Time,
				Memory:  jsonCfg.App.Argon.Memory,
				Threads: jsonCfg.App.Argon.Threads,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN:  jsonCfg.Storage.DB.DSN,
				Name: jsonCfg.Storage.DB.Name,
			},
			Timeout: time.Duration(jsonCfg.Storage.Timeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			BasePath:       jsonCfg.Server.BasePath,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
