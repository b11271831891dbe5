package registration

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/race-tools/startlist/pkg/adapters"
	"github.com/race-tools/startlist/pkg/models/api"
	"github.com/race-tools/startlist/pkg/services/competition"
	registrationservice "github.com/race-tools/startlist/pkg/services/registration"
)

type Handler struct {
	competitions competition.Explorer
	reports      registrationservice.Reporter
}

func NewHandler(competitions competition.Explorer, reports registrationservice.Reporter) *Handler {
	return &Handler{
		competitions: competitions,
		reports:      reports,
	}
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	competitions, err := h.competitions.ListCompetitions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list competitions")
		writeError(w, http.StatusInternalServerError, "failed to list competitions")
		return
	}

	response := make([]api.Competition, 0, len(competitions))
	for _, c := range competitions {
		response = append(response, adapters.MapCompetitionDomainToApi(c))
	}

	writeJSON(w, logger, http.StatusOK, response)
}

func (h *Handler) GetRegistrationReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	competitionID, err := strconv.ParseInt(chi.URLParam(r, "competitionID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "competition id must be an integer")
		return
	}

	report, err := h.reports.GetRegistrationReport(ctx, competitionID)
	if errors.Is(err, registrationservice.ErrCompetitionNotFound) {
		writeError(w, http.StatusNotFound, "competition not found")
		return
	}
	if err != nil {
		logger.Error().
			Err(err).
			Int64("competition_id", competitionID).
			Msg("failed to build registration report")
		writeError(w, http.StatusInternalServerError, "failed to build registration report")
		return
	}

	writeJSON(w, logger, http.StatusOK, adapters.MapRegistrationReportDomainToApi(*report))
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
