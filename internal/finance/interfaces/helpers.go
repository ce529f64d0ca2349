package interfaces

import (
	"net/http"
	"strconv"
	"time"

	financeErrors "fintrack/internal/finance/errors"
)

const dateLayout = "2006-01-02"

func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// respondDomainError maps the two domain error kinds onto their status codes
// and hides everything else behind the fallback message.
func respondDomainError(
	respondError func(w http.ResponseWriter, status int, message string),
	w http.ResponseWriter,
	err error,
	fallback string,
) {
	switch {
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
