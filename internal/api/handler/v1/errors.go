package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/neuroljus/neurohus/internal/ai"
	"github.com/neuroljus/neurohus/internal/api/handler/v1/response"
	"github.com/neuroljus/neurohus/internal/service"
)

var serviceErrors = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrAwardNotFound, http.StatusNotFound, "Utmärkelsen hittades inte"},
	{service.ErrNominationNotFound, http.StatusNotFound, "Nomineringen hittades inte"},
	{service.ErrCourseNotFound, http.StatusNotFound, "Kursen hittades inte"},
	{service.ErrCertificateNotFound, http.StatusNotFound, "Certifikatet hittades inte"},
	{service.ErrTemplateNotFound, http.StatusNotFound, "Mallen hittades inte"},
	{service.ErrCategoryNotFound, http.StatusNotFound, "Kategorin hittades inte"},
	{service.ErrThreadNotFound, http.StatusNotFound, "Tråden hittades inte"},
	{service.ErrReplyNotFound, http.StatusNotFound, "Svaret hittades inte"},
	{service.ErrCircleNotFound, http.StatusNotFound, "Cirkeln hittades inte"},
	{service.ErrGuideNotFound, http.StatusNotFound, "Guiden hittades inte"},
	{service.ErrResearchNotFound, http.StatusNotFound, "Forskningsinlägget hittades inte"},
	{service.ErrDatasetNotFound, http.StatusNotFound, "Datasetet hittades inte"},
	{ai.ErrNoData, http.StatusNotFound, "Ingen data att analysera"},

	{service.ErrInvalidWindow, http.StatusBadRequest, "Röstningen måste börja innan den slutar"},
	{service.ErrInvalidNomination, http.StatusBadRequest, "Exakt en nominerad som matchar typen krävs"},
	{service.ErrInvalidModule, http.StatusBadRequest, "Modulen finns inte i kursen"},
	{service.ErrInvalidCertificateID, http.StatusBadRequest, "Ogiltigt certifikat-ID"},
	{service.ErrInvalidContentType, http.StatusBadRequest, "Okänd innehållstyp"},

	{service.ErrAwardExists, http.StatusConflict, "Utmärkelsen finns redan"},
	{service.ErrAwardInactive, http.StatusConflict, "Utmärkelsen är inte aktiv"},
	{service.ErrWindowClosed, http.StatusConflict, "Röstningsperioden är inte öppen"},
	{service.ErrVotingOpen, http.StatusConflict, "Röstningen pågår fortfarande"},
	{service.ErrDuplicateVote, http.StatusConflict, "Du har redan röstat på denna nominering"},
	{service.ErrCourseNotStarted, http.StatusConflict, "Kursen är inte påbörjad"},
	{service.ErrCourseUnavailable, http.StatusConflict, "Kursen är inte tillgänglig"},
	{service.ErrCourseNotFinished, http.StatusConflict, "Kursen är inte slutförd"},
	{service.ErrThreadClosed, http.StatusConflict, "Tråden är stängd"},
	{service.ErrAlreadyMember, http.StatusConflict, "Användaren är redan medlem"},
	{service.ErrNotMember, http.StatusConflict, "Användaren är inte medlem"},
	{service.ErrCreatorRemoval, http.StatusConflict, "Skaparen kan inte tas bort från cirkeln"},
}

// serviceErr turns a service error into its response. Errors outside the
// table are logged and reported as internal.
func serviceErr(op string, err error) *response.Err {
	for _, e := range serviceErrors {
		if errors.Is(err, e.target) {
			return response.NewErr(e.status, e.message, err)
		}
	}

	return response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err))
}
