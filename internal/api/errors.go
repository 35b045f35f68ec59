package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/gilded-spoon/backend/internal/game"
	"github.com/pageza/gilded-spoon/backend/internal/kitchen"
	"github.com/pageza/gilded-spoon/backend/internal/service"
)

// emptySelectionMessage is what the player sees when cooking nothing
const emptySelectionMessage = "You must select ingredients before cooking!"

// respondError picks the status for err and leaves the body to middleware.ErrorHandler
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrEmptySelection):
		status = http.StatusBadRequest
		err = errors.New(emptySelectionMessage)
	case errors.Is(err, kitchen.ErrUnknownTechnique), errors.Is(err, game.ErrNotInInventory):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
	}
	c.Status(status)
	_ = c.Error(err)
}
