package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
		MaxBodySize    int64    `json:"max_body_size"`
	} `json:"server,omitempty"`

	Adapter struct {
		AssetHost      string   `json:"asset_host"`
		Folder         string   `json:"folder"`
		RequestTimeout Duration `json:"request_timeout"`
		Cloudinary     struct {
			CloudName string `json:"cloud_name"`
			APIKey    string `json:"api_key"`
			APISecret string `json:"api_secret"`
			BaseURL   string `json:"base_url"`
		} `json:"cloudinary,omitempty"`
		S3 struct {
			Endpoint        string `json:"endpoint"`
			Region          string `json:"region"`
			Bucket          string `json:"bucket"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			PublicBaseURL   string `json:"public_base_url"`
			UsePathStyle    bool   `json:"use_path_style"`
		} `json:"s3,omitempty"`
	} `json:"adapter,omitempty"`
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
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
			MaxBodySize:    jsonCfg.Server.MaxBodySize,
		},
		Adapter: Adapter{
			AssetHost:      jsonCfg.Adapter.AssetHost,
			Folder:         jsonCfg.Adapter.Folder,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Cloudinary: Cloudinary{
				CloudName: jsonCfg.Adapter.Cloudinary.CloudName,
				APIKey:    jsonCfg.Adapter.Cloudinary.APIKey,
				APISecret: jsonCfg.Adapter.Cloudinary.APISecret,
				BaseURL:   jsonCfg.Adapter.Cloudinary.BaseURL,
			},
			S3: S3{
				Endpoint:        jsonCfg.Adapter.S3.Endpoint,
				Region:          jsonCfg.Adapter.S3.Region,
				Bucket:          jsonCfg.Adapter.S3.Bucket,
				AccessKeyID:     jsonCfg.Adapter.S3.AccessKeyID,
				SecretAccessKey: jsonCfg.Adapter.S3.SecretAccessKey,
				PublicBaseURL:   jsonCfg.Adapter.S3.PublicBaseURL,
				UsePathStyle:    jsonCfg.Adapter.S3.UsePathStyle,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
