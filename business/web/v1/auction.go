package v1

import (
	"net/http"

	"github.com/ardanlabs/auction/foundation/auction/database"
)

// NewAuctionError converts a classified auction error into a request error
// carrying the matching HTTP status code. Unclassified errors pass through
// untouched and surface as internal errors.
func NewAuctionError(err error) error {
	switch {
	case database.IsKind(err, database.KindValidation):
		return NewRequestError(err, http.StatusBadRequest)

	case database.IsKind(err, database.KindAuthorization):
		return NewRequestError(err, http.StatusForbidden)

	case database.IsKind(err, database.KindState):
		return NewRequestError(err, http.StatusConflict)

	case database.IsKind(err, database.KindTransfer):
		return NewRequestError(err, http.StatusBadGateway)
	}

	return err
}
