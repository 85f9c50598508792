// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"pools-app-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	// Nothing scraped yet: there is no resource to project.
	if errors.IsEmptyCollection(err) {
		return huma.Error404NotFound(err.Error())
	}

	// Source data spans an implausible range; refusing beats rendering it.
	if errors.IsSpanTooLarge(err) {
		return huma.Error422UnprocessableEntity(err.Error())
	}

	// Parse-level failures mean the upstream page changed shape.
	if errors.IsMalformedToken(err) || errors.IsMultiRange(err) ||
		errors.IsMissingMeridiem(err) || errors.IsInvalidInterval(err) {
		return huma.Error502BadGateway("Source schedule data could not be parsed", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
