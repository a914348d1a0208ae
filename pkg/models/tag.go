package models

// ContractTag is one human-readable annotation describing a pool contract
// address. The JSON keys match the tag submission format expected by the
// downstream registry, spaces included.
type ContractTag struct {
	ContractAddress string `json:"Contract Address"`
	PublicNameTag   string `json:"Public Name Tag"`
	ProjectName     string `json:"Project Name"`
	UIWebsiteLink   string `json:"UI/Website Link"`
	PublicNote      string `json:"Public Note"`
}
