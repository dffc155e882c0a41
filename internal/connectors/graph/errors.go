package graph

import (
	"net/http"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
)

// apiError classifies a non-success Graph response by its status code.
func apiError(op string, status int, body string) *domain.Error {
	kind := domain.KindUpstream
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = domain.KindAuth
	case http.StatusNotFound:
		kind = domain.KindNotFound
	}
	return &domain.Error{
		Kind:    kind,
		Op:      op,
		Status:  status,
		Body:    body,
		Message: "request rejected",
	}
}

// filterRejectedError marks a 400 received while a server-side filter
// was applied. Graph rejects $filter on non-indexed columns this way;
// callers retry unfiltered.
func filterRejectedError(op string, status int, body string) *domain.Error {
	return &domain.Error{
		Kind:    domain.KindFilter,
		Op:      op,
		Status:  status,
		Body:    body,
		Message: "server-side filter rejected",
	}
}

// authError builds an auth-kind error carrying the provider response.
func authError(op, message string, status int, body string) *domain.Error {
	return &domain.Error{
		Kind:    domain.KindAuth,
		Op:      op,
		Status:  status,
		Body:    body,
		Message: message,
	}
}
