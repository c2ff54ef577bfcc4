package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// Limits bounds the limit query parameter of list endpoints.
type Limits struct {
	Default int
	Max     int
}

// DefaultLimits are used when the server is not configured otherwise.
var DefaultLimits = Limits{Default: 100, Max: 1000}

const (
	msgInternal      = "Internal server error"
	msgInvalidBody   = "Invalid request body"
	msgInvalidID     = "Invalid id"
	msgInvalidLimit  = "Invalid limit"
	msgMissingPrefix = "Missing required fields: "
	msgInvalidPrefix = "Invalid value for field: "
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessage turns validator errors into a client message naming
// the offending JSON fields.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msgInvalidBody
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return msgMissingPrefix + strings.Join(missing, ", ")
	}
	return msgInvalidPrefix + verrs[0].Field()
}

// hasFieldError reports whether err holds a validation failure on field.
func hasFieldError(err error, field string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == field {
			return true
		}
	}
	return false
}

func hasRequiredError(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeInternalError logs err and answers with the generic 500 body.
func writeInternalError(w http.ResponseWriter, msg string, err error) {
	logger.Log.Errorw(msg, "err", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// decodeJSON reads the request body into dst and validates it.
// On failure it writes the 400 response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func urlUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return id, nil
}

// parseLimit reads the limit query parameter. Missing means l.Default;
// values above l.Max are clamped.
func parseLimit(r *http.Request, l Limits) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return l.Default, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	if l.Max > 0 && n > l.Max {
		n = l.Max
	}
	return n, nil
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
