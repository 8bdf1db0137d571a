package service

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"identityapi/internal/apierror"
	"identityapi/internal/repository"
)

// Application management error codes.
const (
	codeAppBadRequest = "APP-60001"
	codeAppNotFound   = "APP-60006"
	codeAppConflict   = "APP-60007"
	codeAppServer     = "APP-65001"
)

// Notification sender error codes.
const (
	codeSenderBadRequest = "NSM-60001"
	codeSenderNotFound   = "NSM-60002"
	codeSenderConflict   = "NSM-60003"
	codeSenderServer     = "NSM-65001"
)

// Governance error codes.
const (
	codeRetrieveCategories  = "IDG-50001"
	codeRetrieveCategory    = "IDG-50002"
	codeRetrieveConnector   = "IDG-50003"
	codeUpdateProperty      = "IDG-50004"
	codeRetrievePreferences = "IDG-50005"
	codeFilteringNotImpl    = "IDG-50006"
	codePaginationNotImpl   = "IDG-50007"
	codeSortingNotImpl      = "IDG-50008"
	codeCategoryNotFound    = "IDG-50009"
	codeConnectorNotFound   = "IDG-50010"
	codeIncorrectConnector  = "IDG-50011"
	codeUnsupportedProperty = "IDG-50012"
)

const (
	msgInvalidRequest   = "Invalid Request"
	msgServerError      = "Unexpected Server Error"
	msgResourceNotFound = "Resource not found."
)

const msgWSTrustUnsupported = "WS-Trust protocol is not supported by the server."

func appBadRequest(description string) *apierror.Error {
	return apierror.New(http.StatusBadRequest, codeAppBadRequest, msgInvalidRequest, description)
}

func appServerError(cause error, description string) *apierror.Error {
	return apierror.Wrap(cause, http.StatusInternalServerError, codeAppServer, msgServerError, description)
}

func appNotFound(description string) *apierror.Error {
	return apierror.New(http.StatusNotFound, codeAppNotFound, msgResourceNotFound, description)
}

// isClientError reports whether a backend error was caused by the caller's data.
func isClientError(err error) bool {
	return errors.Is(err, repository.ErrInvalidInput) ||
		errors.Is(err, repository.ErrConflict) ||
		errors.Is(err, sql.ErrNoRows)
}

func describe(prefix string, err error) string {
	return fmt.Sprintf("%s %v", prefix, err)
}
