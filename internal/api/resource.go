package api

import (
	"context"       // Service calls
	"encoding/json" // Cache keys
	"net/http"      // HTTP status codes
	"strconv"       // Cache keys

	"bank_reporting/internal/domain"     // Domain models
	"bank_reporting/internal/middleware" // Request scoped logger
	"bank_reporting/internal/utils"      // Redis cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

func idKey(resource string, id uint) string {
	return resource + ":id:" + strconv.FormatUint(uint64(id), 10)
}

func listPrefix(resource string) string {
	return resource + ":list:"
}

// listKey derives a cache key from the write generation and the normalized filter
func listKey(resource string, gen int64, filter any) (string, error) {
	b, err := json.Marshal(filter)
	if err != nil {
		return "", err
	}
	return listPrefix(resource) + "g" + strconv.FormatInt(gen, 10) + ":" + string(b), nil
}

// getByIDHandler serves GET /{resource}/:id through the cache
func getByIDHandler[T any](resource string, get func(context.Context, uint) (*T, error), cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		ctx := c.Request.Context()
		reqLog := middleware.Logger(c, log)
		key := idKey(resource, id) // Cache key for the entity

		var cached T
		if found, err := cache.Get(ctx, key, &cached); err != nil {
			reqLog.WithError(err).Warn("Cache read failed")
		} else if found {
			c.JSON(http.StatusOK, cached) // Serve from cache
			return
		}

		entity, err := get(ctx, id)
		if err != nil {
			respondError(c, log, err)
			return
		}
		if err := cache.Set(ctx, key, entity); err != nil {
			reqLog.WithError(err).Warn("Cache write failed")
		}
		c.JSON(http.StatusOK, entity)
	}
}

// listHandler serves GET /{resource} as JSON, CSV or XLSX. Pages are cached
// in their JSON form whatever the requested output.
func listHandler[T, F any](
	resource string,
	parse func(*gin.Context) (F, exportFormat, error),
	list func(context.Context, F) (domain.Page[T], error),
	cache *utils.Cache,
	log logrus.FieldLogger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, format, err := parse(c)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		ctx := c.Request.Context()
		reqLog := middleware.Logger(c, log)

		// The generation is read before the query, so a page computed while a
		// write commits lands under a key that later reads no longer use.
		cacheable := true
		gen, err := cache.Generation(ctx, resource)
		if err != nil {
			reqLog.WithError(err).Warn("Cache read failed")
			cacheable = false
		}
		key, err := listKey(resource, gen, filter)
		if err != nil {
			respondError(c, log, err)
			return
		}
		var page domain.Page[T]
		var found bool
		if cacheable {
			if found, err = cache.Get(ctx, key, &page); err != nil {
				reqLog.WithError(err).Warn("Cache read failed")
			}
		}
		if !found {
			if page, err = list(ctx, filter); err != nil {
				respondError(c, log, err)
				return
			}
			if cacheable {
				if err := cache.Set(ctx, key, page); err != nil {
					reqLog.WithError(err).Warn("Cache write failed")
				}
			}
		}

		if exportPage(c, log, resource, format, page.Results) {
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// invalidateLists moves resource to a new generation after a write and drops
// the pages cached so far
func invalidateLists(c *gin.Context, cache *utils.Cache, log logrus.FieldLogger, resource string) {
	ctx := c.Request.Context()
	reqLog := middleware.Logger(c, log).WithField("resource", resource)
	if err := cache.Bump(ctx, resource); err != nil {
		reqLog.WithError(err).Warn("Cache invalidation failed")
	}
	if err := cache.InvalidatePrefix(ctx, listPrefix(resource)); err != nil {
		reqLog.WithError(err).Warn("Cache invalidation failed")
	}
}
