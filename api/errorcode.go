package api

import "github.com/pfmo-ng/facility-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrUserTaken.Error(),
		1101: store.ErrUserNotFound.Error(),
		1102: "invalid username or password",
		1103: "account is deactivated",
		1104: "permission denied",

		1200: store.ErrSubmissionNotFound.Error(),
		1201: "query submissions error",
		1202: "update submission error",

		1300: "query dashboard error",
		1301: "report generation error",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUserTaken          = errorJSON(1100)
	errorUserNotFound       = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)
	errorAccountDeactivated = errorJSON(1103)
	errorForbidden          = errorJSON(1104)

	errorSubmissionNotFound = errorJSON(1200)
	errorQuerySubmissions   = errorJSON(1201)
	errorUpdateSubmission   = errorJSON(1202)

	errorQueryDashboard   = errorJSON(1300)
	errorReportGeneration = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
