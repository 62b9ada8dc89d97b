package api

import (
	"log/slog"
	"net/http"

	"github.com/newsroom-dev/newsroom-api/internal/api/shared"
	"github.com/newsroom-dev/newsroom-api/internal/store"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userStore store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// GetUsers handles GET /api/users requests
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UsersResponse{Users: users})
}
