package response

import (
	jsoniter "github.com/json-iterator/go"
)

// Capabilities describes what this instance supports, served at /api/info.
type Capabilities struct {
	Service        string   `json:"service"`
	Formats        []string `json:"formats"`
	MaxUploadBytes int64    `json:"maxUploadBytes"`
	QualityRange   [2]int   `json:"qualityRange"`
	Persistence    bool     `json:"persistence"`
	Storage        string   `json:"storage"`
}

func (c *Capabilities) Marsh() (string, error) {
	return jsoniter.MarshalToString(c)
}

func UnmarshalCapabilities(data string) (*Capabilities, error) {
	var result Capabilities
	err := jsoniter.Unmarshal([]byte(data), &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
