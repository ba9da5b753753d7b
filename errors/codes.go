package errors

// ErrorCode identifies a class of application error. Codes are stable
// across releases; clients may switch on them.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN          ErrorCode = 0
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_FORBIDDEN        ErrorCode = 1004

	ErrorCode_CALL_LOG_NOT_FOUND      ErrorCode = 2000
	ErrorCode_CALL_LOG_INSERT_FAILED  ErrorCode = 2001
	ErrorCode_CALL_LOG_UPDATE_FAILED  ErrorCode = 2002
	ErrorCode_CALL_LOG_DELETE_FAILED  ErrorCode = 2003
	ErrorCode_CALL_LOG_QUERY_FAILED   ErrorCode = 2004
	ErrorCode_MEMBER_ID_REQUIRED      ErrorCode = 2005
	ErrorCode_CALL_ID_REQUIRED        ErrorCode = 2006
	ErrorCode_INVALID_PAYLOAD         ErrorCode = 2007
	ErrorCode_RECORDING_UPLOAD_FAILED ErrorCode = 2100
	ErrorCode_STORAGE_FAILED          ErrorCode = 2101
	ErrorCode_CACHE_FAILED            ErrorCode = 2102
	ErrorCode_SESSION_NOT_FOUND       ErrorCode = 2200
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                 "UNKNOWN",
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:          "ALREADY_EXISTS",
	ErrorCode_FORBIDDEN:               "FORBIDDEN",
	ErrorCode_CALL_LOG_NOT_FOUND:      "CALL_LOG_NOT_FOUND",
	ErrorCode_CALL_LOG_INSERT_FAILED:  "CALL_LOG_INSERT_FAILED",
	ErrorCode_CALL_LOG_UPDATE_FAILED:  "CALL_LOG_UPDATE_FAILED",
	ErrorCode_CALL_LOG_DELETE_FAILED:  "CALL_LOG_DELETE_FAILED",
	ErrorCode_CALL_LOG_QUERY_FAILED:   "CALL_LOG_QUERY_FAILED",
	ErrorCode_MEMBER_ID_REQUIRED:      "MEMBER_ID_REQUIRED",
	ErrorCode_CALL_ID_REQUIRED:        "CALL_ID_REQUIRED",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_RECORDING_UPLOAD_FAILED: "RECORDING_UPLOAD_FAILED",
	ErrorCode_STORAGE_FAILED:          "STORAGE_FAILED",
	ErrorCode_CACHE_FAILED:            "CACHE_FAILED",
	ErrorCode_SESSION_NOT_FOUND:       "SESSION_NOT_FOUND",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
