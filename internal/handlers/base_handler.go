package handlers

import (
	"errors"
	"strconv"

	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/validator"
	"arenaapp_backend/pkg/apperrors"
	"arenaapp_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs: request validation and
// access to the per-request database handle.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{Validator: v}
}

// GetDB pulls the database handle stored by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, _ := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
	return db
}

// BindAndValidateJSON binds the JSON body and runs struct validation.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return apperrors.NewBadRequestError("Invalid request body")
	}
	return h.validate(obj)
}

// BindAndValidateQuery binds query parameters and runs struct validation.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return apperrors.NewBadRequestError("Invalid query parameters")
	}
	return h.validate(obj)
}

func (h *BaseHandler) validate(obj interface{}) error {
	err := h.Validator.Validate(obj)
	if err == nil {
		return nil
	}
	var ve *validator.ValidationError
	if errors.As(err, &ve) {
		return apperrors.ValidationError(ve.Errors)
	}
	return apperrors.InternalError(err)
}

// HandleServiceError writes an error response for a failed service call.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// EntityType resolves the :entity path parameter into a catalog type.
func (h *BaseHandler) EntityType(c *gin.Context) (listing.Type, error) {
	typ := listing.Type(c.Param("entity"))
	if !listing.ValidType(typ) {
		return "", apperrors.ErrUnknownListingType
	}
	return typ, nil
}

// ParsePage reads the 1-based page query parameter, defaulting to 1.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
