package entities

// Class is a read-only class catalog entry used for recommendations
type Class struct {
	Name           string      `json:"name"`
	PrimaryStats   []Attribute `json:"primary_stats"`
	SecondaryStats []Attribute `json:"secondary_stats"`
}
