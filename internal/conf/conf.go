// Package conf holds the bootstrap configuration scanned from configs/config.yaml.
package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of the configuration tree.
type Bootstrap struct {
	Server    *Server    `json:"server"`
	Data      *Data      `json:"data"`
	Catalog   *Catalog   `json:"catalog"`
	Search    *Search    `json:"search"`
	Favorites *Favorites `json:"favorites"`
}

type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Data struct {
	Store *Data_Store `json:"store"`
	Redis *Data_Redis `json:"redis"`
}

// Data_Store selects the key-value backend collections are persisted to.
type Data_Store struct {
	// Driver is one of memory, sqlite, redis or postgres.
	Driver    string `json:"driver"`
	Source    string `json:"source"`
	KeyPrefix string `json:"key_prefix"`
}

type Data_Redis struct {
	Addr         string    `json:"addr"`
	Password     string    `json:"password"`
	Db           int32     `json:"db"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
}

type Catalog struct {
	Url        string    `json:"url"`
	ApiKey     string    `json:"api_key"`
	Timeout    *Duration `json:"timeout"`
	MaxRetries int32     `json:"max_retries"`
	CacheTtl   *Duration `json:"cache_ttl"`
}

type Search struct {
	PageCap           int32 `json:"page_cap"`
	MaxSessions       int32 `json:"max_sessions"`
	StopWhenExhausted bool  `json:"stop_when_exhausted"`
}

type Favorites struct {
	Dedup bool `json:"dedup"`
}

// Duration accepts either a Go duration string ("1.5s") or integer nanoseconds.
type Duration struct {
	time.Duration
}

// AsDuration returns the wrapped value; a nil receiver yields zero.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
