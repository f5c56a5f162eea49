package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError translates the domain error taxonomy into HTTP
// statuses. Domain errors go back to the station for a human decision;
// they are never retried here. Anything unmatched is a store or
// internal failure and surfaces as 500 so an empty default can never
// masquerade as a healthy empty venue.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrTableUnavailable):
		log.Warn(operation+" failed - table unavailable", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, repository.ErrTableNotActive):
		log.Warn(operation+" failed - table not active", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, repository.ErrTableNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrMenuItemNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrInvalidParty):
		log.Warn(operation+" failed - invalid party", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
