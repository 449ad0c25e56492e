package badge

import "encoding/json"

type endpoint struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color"`
	LabelColor    string `json:"labelColor,omitempty"`
}

func renderJSON(d *Data) ([]byte, error) {
	return json.Marshal(endpoint{
		SchemaVersion: 1,
		Label:         d.Label(),
		Message:       d.Message(),
		Color:         d.colorName(),
		LabelColor:    d.LabelColor,
	})
}
