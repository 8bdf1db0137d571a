package model

// ConnectorConfig is a governance connector with its current tenant configuration.
type ConnectorConfig struct {
	Name         string
	FriendlyName string
	Category     string
	SubCategory  string
	Order        int
	Properties   []Property
}

// Property is a single connector configuration entry.
type Property struct {
	Name         string
	Value        string
	DisplayName  string
	Description  string
	Confidential bool
}

// ConnectorCategory groups connectors sharing a category name, in backend order.
type ConnectorCategory struct {
	Name       string
	Connectors []ConnectorConfig
}
