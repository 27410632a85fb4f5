package constants

// CC5 Response values.
const (
	ResponseApproved   = "Approved"
	ResponseBadRequest = "BadRequest"
	ResponseNotMatched = "NotMatched"
	ResponseError      = "Error"
)

// CC5 ProcReturnCode values.
const (
	ProcReturnApproved   = "00"
	ProcReturnBadRequest = "98"
	ProcReturnNotMatched = "99"
)

const (
	ContentTypeXML  = "application/xml; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Response formats a route renders errors in.
const (
	FormatKey  = "response_format"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatHTML = "html"
)

// ISOTimeLayout matches JavaScript's Date.toISOString for UTC times.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// GetResponseStatus returns the CC5 Response and ProcReturnCode pair for an error code.
func GetResponseStatus(code string) (response string, procReturnCode string) {
	switch code {
	case ErrCodeInvalidXML, ErrCodeMissingOrderID:
		return ResponseBadRequest, ProcReturnBadRequest
	case ErrCodeNoMockMatched:
		return ResponseNotMatched, ProcReturnNotMatched
	default:
		return ResponseError, ProcReturnNotMatched
	}
}
