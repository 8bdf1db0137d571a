package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"identityapi/internal/apierror"
	"identityapi/internal/dto"
	"identityapi/internal/model"
	"identityapi/internal/repository"
	"identityapi/internal/tenant"
)

// Governance exposes identity governance connectors and their properties.
type Governance interface {
	// GetConnectorCategories lists every category. Pagination, filtering and
	// sorting are not implemented and are rejected with 501 when requested.
	GetConnectorCategories(ctx context.Context, limit, offset *int, filter, sort *string) ([]dto.CategoriesRes, error)
	GetCategory(ctx context.Context, categoryID string) (*dto.CategoryRes, error)
	GetConnectorsByCategory(ctx context.Context, categoryID string) ([]dto.ConnectorRes, error)
	GetConnector(ctx context.Context, categoryID, connectorID string) (*dto.ConnectorRes, error)
	GetConfigPreference(ctx context.Context, attrs []dto.PreferenceSearchAttribute) ([]dto.PreferenceResp, error)
	UpdateConnectorProperties(ctx context.Context, categoryID, connectorID string, req *dto.ConnectorsPatchReq) error
}

type governance struct {
	repo repository.GovernanceRepository
}

// NewGovernance constructs a new Governance service.
func NewGovernance(repo repository.GovernanceRepository) Governance {
	return &governance{repo: repo}
}

// EncodeID returns the base64url, unpadded id of a category or connector name.
func EncodeID(name string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(name))
}

// DecodeID reverses EncodeID. Padded input is accepted.
func DecodeID(id string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(id, "="))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *governance) GetConnectorCategories(ctx context.Context, limit, offset *int, filter, sort *string) ([]dto.CategoriesRes, error) {
	switch {
	case limit != nil, offset != nil:
		return nil, apierror.New(http.StatusNotImplemented, codePaginationNotImpl, "Pagination not supported.",
			"Pagination capability is not supported in this version of the API.")
	case filter != nil:
		return nil, apierror.New(http.StatusNotImplemented, codeFilteringNotImpl, "Filtering not supported.",
			"Filtering capability is not supported in this version of the API.")
	case sort != nil:
		return nil, apierror.New(http.StatusNotImplemented, codeSortingNotImpl, "Sorting not supported.",
			"Sorting capability is not supported in this version of the API.")
	}

	td := tenant.FromContext(ctx)
	categories, err := s.repo.ListCategorized(ctx, td)
	if err != nil {
		return nil, governanceServerError(err, codeRetrieveCategories, "Unable to retrieve governance connector categories.",
			"Server encountered an error while retrieving the governance connector categories.")
	}

	out := make([]dto.CategoriesRes, 0, len(categories))
	for _, category := range categories {
		categoryID := EncodeID(category.Name)
		res := dto.CategoriesRes{
			ID:         categoryID,
			Name:       category.Name,
			Self:       apiPath(td, "identity-governance", categoryID),
			Connectors: make([]dto.CategoryConnectorsRes, 0, len(category.Connectors)),
		}
		for _, c := range category.Connectors {
			connectorID := EncodeID(c.Name)
			res.Connectors = append(res.Connectors, dto.CategoryConnectorsRes{
				ID:   connectorID,
				Self: apiPath(td, "identity-governance", categoryID, "connectors", connectorID),
			})
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *governance) GetCategory(ctx context.Context, categoryID string) (*dto.CategoryRes, error) {
	connectors, err := s.GetConnectorsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	name, _ := DecodeID(categoryID)
	return &dto.CategoryRes{Name: name, Connectors: connectors}, nil
}

func (s *governance) GetConnectorsByCategory(ctx context.Context, categoryID string) ([]dto.ConnectorRes, error) {
	category, err := DecodeID(categoryID)
	if err != nil {
		return nil, categoryNotFound(categoryID)
	}
	connectors, err := s.repo.ListByCategory(ctx, tenant.FromContext(ctx), category)
	if err != nil {
		return nil, governanceServerError(err, codeRetrieveCategory, "Unable to retrieve governance connector category.",
			"Server encountered an error while retrieving the governance connector category.")
	}
	if len(connectors) == 0 {
		return nil, categoryNotFound(categoryID)
	}

	out := make([]dto.ConnectorRes, 0, len(connectors))
	for i := range connectors {
		out = append(out, toConnectorRes(&connectors[i]))
	}
	return out, nil
}

func (s *governance) GetConnector(ctx context.Context, categoryID, connectorID string) (*dto.ConnectorRes, error) {
	connector, err := s.findConnector(ctx, categoryID, connectorID)
	if err != nil {
		return nil, err
	}
	res := toConnectorRes(connector)
	return &res, nil
}

func (s *governance) findConnector(ctx context.Context, categoryID, connectorID string) (*model.ConnectorConfig, error) {
	name, err := DecodeID(connectorID)
	if err != nil {
		return nil, connectorNotFound(connectorID)
	}
	connector, err := s.repo.FindConnector(ctx, tenant.FromContext(ctx), name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, connectorNotFound(connectorID)
		}
		return nil, governanceServerError(err, codeRetrieveConnector, "Unable to retrieve governance connector.",
			"Server encountered an error while retrieving the governance connector.")
	}
	if EncodeID(connector.Category) != categoryID {
		return nil, connectorNotFound(connectorID)
	}
	return connector, nil
}

func (s *governance) GetConfigPreference(ctx context.Context, attrs []dto.PreferenceSearchAttribute) ([]dto.PreferenceResp, error) {
	td := tenant.FromContext(ctx)
	out := make([]dto.PreferenceResp, 0, len(attrs))
	for _, attr := range attrs {
		connector, err := s.repo.FindConnector(ctx, td, attr.ConnectorName)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apierror.Wrap(err, http.StatusBadRequest, codeIncorrectConnector, "Invalid connector name.",
					"Unable to find a connector with the name: "+attr.ConnectorName)
			}
			return nil, governanceServerError(err, codeRetrievePreferences, "Unable to retrieve governance connector preferences.",
				"Server encountered an error while retrieving the governance connector preferences.")
		}

		props, err := selectPreferences(connector.Properties, attr.Properties)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.PreferenceResp{ConnectorName: attr.ConnectorName, Properties: props})
	}
	return out, nil
}

// selectPreferences returns the named properties, or every non-confidential
// property when names is nil. Confidential properties are never returned.
func selectPreferences(properties []model.Property, names []string) ([]dto.PropertyReq, error) {
	out := make([]dto.PropertyReq, 0, len(properties))
	if names == nil {
		for _, p := range properties {
			if p.Confidential {
				continue
			}
			out = append(out, dto.PropertyReq{Name: p.Name, Value: p.Value})
		}
		return out, nil
	}

	byName := make(map[string]model.Property, len(properties))
	for _, p := range properties {
		byName[p.Name] = p
	}
	for _, name := range names {
		p, ok := byName[name]
		if !ok || p.Confidential {
			return nil, unsupportedProperty(name)
		}
		out = append(out, dto.PropertyReq{Name: p.Name, Value: p.Value})
	}
	return out, nil
}

func (s *governance) UpdateConnectorProperties(ctx context.Context, categoryID, connectorID string, req *dto.ConnectorsPatchReq) error {
	connector, err := s.findConnector(ctx, categoryID, connectorID)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	known := make(map[string]struct{}, len(connector.Properties))
	for _, p := range connector.Properties {
		known[p.Name] = struct{}{}
	}
	values := make(map[string]string, len(req.Properties))
	for _, p := range req.Properties {
		if _, ok := known[p.Name]; !ok {
			return unsupportedProperty(p.Name)
		}
		values[p.Name] = p.Value
	}
	if len(values) == 0 {
		return nil
	}

	if err := s.repo.UpdateConfiguration(ctx, tenant.FromContext(ctx), values); err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return apierror.Wrap(err, http.StatusBadRequest, codeUnsupportedProperty, "Unsupported property is requested.", err.Error())
		}
		return governanceServerError(err, codeUpdateProperty, "Unable to update governance connector property.",
			"Server encountered an error while updating the governance connector property.")
	}
	return nil
}

func toConnectorRes(c *model.ConnectorConfig) dto.ConnectorRes {
	res := dto.ConnectorRes{
		ID:           EncodeID(c.Name),
		Name:         c.Name,
		Category:     c.Category,
		FriendlyName: c.FriendlyName,
		Order:        c.Order,
		SubCategory:  c.SubCategory,
		Properties:   make([]dto.PropertyRes, 0, len(c.Properties)),
	}
	for _, p := range c.Properties {
		res.Properties = append(res.Properties, dto.PropertyRes{
			Name:        p.Name,
			Value:       p.Value,
			DisplayName: p.DisplayName,
			Description: p.Description,
		})
	}
	return res
}

func governanceServerError(cause error, code, message, description string) *apierror.Error {
	return apierror.Wrap(cause, http.StatusInternalServerError, code, message, description)
}

func categoryNotFound(id string) *apierror.Error {
	return apierror.New(http.StatusNotFound, codeCategoryNotFound, msgResourceNotFound,
		"Unable to find a category with the id: "+id)
}

func connectorNotFound(id string) *apierror.Error {
	return apierror.New(http.StatusNotFound, codeConnectorNotFound, msgResourceNotFound,
		"Unable to find a connector with the id: "+id)
}

func unsupportedProperty(name string) *apierror.Error {
	return apierror.New(http.StatusBadRequest, codeUnsupportedProperty, "Unsupported property is requested.",
		"Unsupported property: "+name)
}
