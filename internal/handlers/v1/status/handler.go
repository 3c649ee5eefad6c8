package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/finance-server/internal/logging"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	DB Pinger
}

// NewHandler returns a liveness handler. When db is non-nil the handler also
// fails while the database cannot be reached.
func NewHandler(db Pinger) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		stop := logData.AddTiming("pingMs")
		err := h.DB.PingContext(req.Context())
		stop()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return fmt.Errorf("status: database unreachable: %w", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
