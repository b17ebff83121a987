package oauth2

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseTokenResponse interprets a token endpoint response and decodes a
// successful one into dst.
//
//   - an empty body is a *ResponseFormatError wrapping ErrEmptyResponse
//   - a 2xx body is decoded into dst and must carry a non-empty access_token
//     and token_type; if that fails the body is tried as an error response
//   - any other status is decoded as an error response, giving a *ServerError
//   - bodies that are neither give a *ResponseFormatError with the raw body
//
// On error the contents of dst are undefined.
func ParseTokenResponse(status int, body []byte, dst Token) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &ResponseFormatError{Status: status, Body: body, Err: ErrEmptyResponse}
	}

	if isSuccess(status) {
		err := json.Unmarshal(body, dst)
		if err == nil {
			err = checkRequired(dst)
		}
		if err == nil {
			return nil
		}
		if serverErr := parseErrorResponse(status, body); serverErr != nil {
			return serverErr
		}
		return &ResponseFormatError{Status: status, Body: body, Err: err}
	}

	if serverErr := parseErrorResponse(status, body); serverErr != nil {
		return serverErr
	}
	return &ResponseFormatError{
		Status: status,
		Body:   body,
		Err:    fmt.Errorf("unexpected status %d without an OAuth2 error payload", status),
	}
}

func checkRequired(tok Token) error {
	if tok.GetAccessToken() == "" {
		return fmt.Errorf("access_token is missing or empty")
	}
	if tok.GetTokenType() == "" {
		return fmt.Errorf("token_type is missing or empty")
	}
	return nil
}

func parseErrorResponse(status int, body []byte) *ServerError {
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Error == "" {
		return nil
	}
	return &ServerError{Status: status, Response: resp}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
