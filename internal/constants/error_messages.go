package constants

const (
	ErrCodeInvalidXML     = "INVALID_XML"
	ErrCodeMissingOrderID = "MISSING_ORDER_ID"
	ErrCodeNoMockMatched  = "NO_MOCK_MATCHED"
	ErrCodeInvalidForm    = "INVALID_FORM"
	ErrCodeMissingOkURL   = "MISSING_OK_URL"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidXML     = "Invalid XML"
	ErrMsgMissingOrderID = "Invalid or missing OrderId"
	ErrMsgNoMockMatched  = "No mock matched"
	ErrMsgInvalidForm    = "failed to parse form body"
	ErrMsgMissingOkURL   = "okURL is missing, no merchant callback was sent"
	ErrMsgInternalError  = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidXML:     ErrMsgInvalidXML,
	ErrCodeMissingOrderID: ErrMsgMissingOrderID,
	ErrCodeNoMockMatched:  ErrMsgNoMockMatched,
	ErrCodeInvalidForm:    ErrMsgInvalidForm,
	ErrCodeMissingOkURL:   ErrMsgMissingOkURL,
	ErrCodeInternalError:  ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidXML, ErrCodeMissingOrderID, ErrCodeInvalidForm, ErrCodeMissingOkURL:
		return 400
	case ErrCodeNoMockMatched:
		return 404
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
