package leads

import "EportsTech/pkg/response"

var (
	ErrLeadNotFound = response.NewError(404, "lead not found")
	ErrUnknownItem  = response.NewError(400, "unknown configurator item")
	ErrSubmitLead   = response.NewError(500, "failed to submit lead")
	ErrListLeads    = response.NewError(500, "failed to list leads")

	// ErrSubmitInProgress is retryable: the same request id is still being stored.
	ErrSubmitInProgress = response.NewError(409, "lead submission already in progress")
)
