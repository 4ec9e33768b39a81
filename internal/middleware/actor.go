package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/EventApproval/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	UserIDHeader = "X-User-ID"
	actorKey     = "actor"
)

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Actor resolves the caller named by X-User-ID. The identity is trusted as
// already authenticated upstream; only its existence and role are loaded.
func Actor(users UserLookup, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			c.Set("error", domain.ErrUnauthenticated.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.Set("error", domain.ErrUnauthenticated.Error())
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "resolve actor",
				logger.String("user_id", id),
				logger.String("error", err.Error()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		c.Set(actorKey, domain.Actor{ID: user.ID, Role: user.Role})
		c.Next()
	}
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
