package httpapi

import (
	stderrors "errors"
	"net/http"

	"talent-stake/domain/dto"
	"talent-stake/domain/errors"
)

var classStatus = map[errors.Class]int{
	errors.ClassFunds:         http.StatusPaymentRequired,
	errors.ClassAuthorization: http.StatusForbidden,
	errors.ClassStale:         http.StatusConflict,
	errors.ClassInvalid:       http.StatusBadRequest,
	errors.ClassNotFound:      http.StatusNotFound,
	errors.ClassInternal:      http.StatusInternalServerError,
}

// StatusFor returns the HTTP status for err.
func StatusFor(err error) int {
	if status, ok := classStatus[errors.Classify(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	class := errors.Classify(err)
	status := StatusFor(err)

	resp := dto.ErrorResponse{
		Error: errors.UserMessage(err),
		Class: string(class),
	}
	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		resp.Fields = validationErr.Fields
	}

	if class == errors.ClassInternal {
		s.logger.Error("Request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, resp)
}

func invalidInput(field, message string) error {
	validationErr := &errors.ValidationError{}
	validationErr.AddFieldError(field, message)
	return validationErr
}
