package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookit/services"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrConcurrency):
		status = http.StatusConflict
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"code": 0, "mess": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"code": 0, "mess": err.Error()})
}

// CurrentActor lấy Actor do AuthMiddleware gắn vào context.
func CurrentActor(c *gin.Context) (services.Actor, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return services.Actor{}, false
	}
	actor, ok := v.(services.Actor)
	return actor, ok
}

func SetCurrentActor(c *gin.Context, actor services.Actor) {
	c.Set(currentUserKey, actor)
	c.Set("currentUserID", actor.ID)
	c.Set("currentUserRole", actor.Role)
}

func mustActor(c *gin.Context) (services.Actor, bool) {
	actor, ok := CurrentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Login first to access this resource"})
		return services.Actor{}, false
	}
	return actor, true
}

func parseID(c *gin.Context, value, name string) (uint, bool) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
