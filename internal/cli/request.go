package cli

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// QueryRequest is a move query before the core parsers see it. The
// validator catches shape problems (missing or oversized fields) so
// the core only ever reports semantic errors.
type QueryRequest struct {
	Piece  string `validate:"required,alpha,max=16"`
	Square string `validate:"required,max=8"`
}

// ParseRequest builds a QueryRequest from command arguments. Accepted
// forms: two tokens ("queen" "E4") or a single comma-joined string
// ("Queen, E4").
func ParseRequest(args []string) (*QueryRequest, error) {
	joined := strings.TrimSpace(strings.Join(args, " "))
	if joined == "" {
		return nil, fmt.Errorf("empty query: expected <piece> <square>")
	}

	var fields []string
	if strings.Contains(joined, ",") {
		parts := strings.Split(joined, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected '<piece>, <square>', got %q", joined)
		}
		fields = parts
	} else {
		fields = strings.Fields(joined)
		if len(fields) != 2 {
			return nil, fmt.Errorf("expected 2 arguments (<piece> <square>), got %d", len(fields))
		}
	}

	req := &QueryRequest{
		Piece:  strings.TrimSpace(fields[0]),
		Square: strings.TrimSpace(fields[1]),
	}

	if errs := validate.Struct(req); errs != nil {
		return nil, fmt.Errorf("%s", formatValidationErrors(errs.(validator.ValidationErrors)))
	}

	return req, nil
}

// formatValidationErrors turns validator tags into readable messages.
func formatValidationErrors(errs validator.ValidationErrors) string {
	var details strings.Builder
	for _, err := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", err.Field()))
		case "alpha":
			details.WriteString(fmt.Sprintf("%s must contain only letters", err.Field()))
		case "min":
			if err.Type().Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
			}
		case "max":
			if err.Type().Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
		}
	}
	return details.String()
}
