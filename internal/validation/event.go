package validation

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"github.com/aws/aws-lambda-go/events"
)

// ValidateEvent checks a raw invocation event and returns its body.
// The event must be a JSON object carrying a string "body" field.
func ValidateEvent(raw []byte) (string, error) {
	var event map[string]json.RawMessage
	if err := json.Unmarshal(raw, &event); err != nil || event == nil {
		return "", NewInvalidInputError(MsgInvalidRequest)
	}

	rawBody, ok := event["body"]
	if !ok {
		return "", NewInvalidInputError(MsgInvalidEventBody)
	}

	rawBody = bytes.TrimSpace(rawBody)
	if len(rawBody) == 0 || rawBody[0] != '"' {
		return "", NewInvalidInputError(MsgInvalidEventBody)
	}

	var body string
	if err := json.Unmarshal(rawBody, &body); err != nil {
		return "", NewInvalidInputError(MsgInvalidEventBody)
	}

	return body, nil
}

// ValidateRequest checks an API Gateway proxy request and returns its decoded body.
func ValidateRequest(request events.APIGatewayProxyRequest) (string, error) {
	if request.Body == "" {
		return "", NewInvalidInputError(MsgInvalidEventBody)
	}

	if !request.IsBase64Encoded {
		return request.Body, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(request.Body)
	if err != nil || len(decoded) == 0 {
		return "", NewInvalidInputError(MsgInvalidEventBody)
	}
	return string(decoded), nil
}
