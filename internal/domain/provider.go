package domain

// Provider is a care provider (verksamhet) in the public listing. The JSON
// keys are the ones the web frontend already reads.
type Provider struct {
	ID           int     `json:"id"`
	Name         string  `json:"namn"`
	Municipality string  `json:"kommun"`
	Type         string  `json:"typ"`
	Rating       float64 `json:"betyg"`
	Description  string  `json:"beskrivning"`
}
