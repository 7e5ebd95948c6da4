// Package service contains the application's business logic layer.
package service

import "finlit/internal/models"

// AuthorizeOwner is the ownership predicate applied before any mutating
// operation on an owned resource. It is deliberately a pure function with no
// storage access so it can be tested in isolation: the caller resolves the
// resource first and passes its owner id here.
func AuthorizeOwner(requesterID, ownerID uint) error {
	if requesterID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}
	if requesterID != ownerID {
		return models.NewForbiddenError("You do not own this resource")
	}
	return nil
}
