package dto

type CategoryConnectorsRes struct {
	ID   string `json:"id"`
	Self string `json:"self"`
}

type CategoriesRes struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Self       string                  `json:"self"`
	Connectors []CategoryConnectorsRes `json:"connectors"`
}

type PropertyRes struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type ConnectorRes struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	FriendlyName string        `json:"friendlyName"`
	Order        int           `json:"order"`
	SubCategory  string        `json:"subCategory"`
	Properties   []PropertyRes `json:"properties"`
}

type CategoryRes struct {
	Name       string         `json:"name"`
	Connectors []ConnectorRes `json:"connectors"`
}

type PropertyReq struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ConnectorsPatchReq is the body of PATCH .../connectors/{connectorId}.
// Operation is always UPDATE.
type ConnectorsPatchReq struct {
	Operation  string        `json:"operation"`
	Properties []PropertyReq `json:"properties"`
}

// PreferenceSearchAttribute selects connector properties. A nil Properties
// selects every non-confidential property.
type PreferenceSearchAttribute struct {
	ConnectorName string   `json:"connectorName"`
	Properties    []string `json:"properties,omitempty"`
}

type PreferenceResp struct {
	ConnectorName string        `json:"connectorName"`
	Properties    []PropertyReq `json:"properties"`
}
