package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// Endpoint describes one monitored HTTP target. Loaded once at startup and
// read-only afterwards.
type Endpoint struct {
	Name    string            `yaml:"name" json:"name"`
	URL     string            `yaml:"url" json:"url"`
	Method  string            `yaml:"method" json:"method"`
	Headers map[string]string `yaml:"headers" json:"headers,omitempty"`
	Body    string            `yaml:"body" json:"body,omitempty"`
}

// Domain returns the host component of the endpoint URL (host:port as
// written), used as the per-domain aggregation key.
func (e Endpoint) Domain() string {
	u, err := url.Parse(e.URL)
	if err != nil {
		return ""
	}
	return u.Host
}

func (e Endpoint) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.URL, validation.Required, is.RequestURL),
		validation.Field(&e.Body, validation.By(validJSONBody)),
	)
}

func validJSONBody(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !json.Valid([]byte(s)) {
		return validation.NewError("validation_body_json", "must be valid JSON text")
	}
	return nil
}

// Load reads the endpoints file (a YAML list) and returns validated
// descriptors with defaults applied. Any invalid entry is a fatal error;
// monitoring never starts on a bad configuration.
func Load(path string) ([]Endpoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}

	var endpoints []Endpoint
	if err := yaml.Unmarshal(raw, &endpoints); err != nil {
		return nil, fmt.Errorf("parse endpoints file: %w", err)
	}
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("endpoints file %s contains no endpoints", path)
	}

	for i := range endpoints {
		if endpoints[i].Method == "" {
			endpoints[i].Method = "GET"
		}
		if err := endpoints[i].Validate(); err != nil {
			return nil, fmt.Errorf("endpoint %d (%q): %w", i, endpoints[i].Name, err)
		}
	}
	return endpoints, nil
}
