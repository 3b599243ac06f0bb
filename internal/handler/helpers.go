package handler

import (
	"errors"
	"net/http"
	"reflect"

	"pdvmercado/internal/apierror"
	"pdvmercado/internal/apperror"
	"pdvmercado/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work on money fields.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.WithCode("json_invalido", "JSON inválido: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindQuery is bindAndValidate for query-string filters.
func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.WithCode("parametro_invalido", err.Error()))
		return false
	}
	return runValidation(c, filter)
}

func runValidation(c *gin.Context, v interface{}) bool {
	if err := validate.Struct(v); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return false
		}
		fields := make(map[string]string, len(ves))
		for _, fe := range ves {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// paramUUID parses a path parameter; on failure it writes a 400 and returns false.
func paramUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.WithCode("parametro_invalido", name+" inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors to status codes. Anything unclassified is
// logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		var ve *apperror.ValidationError
		errors.As(err, &ve)
		c.JSON(http.StatusUnprocessableEntity, &apierror.ValidationError{
			Detail: ve.Msg,
			Code:   string(apperror.KindValidation),
			Fields: ve.Fields,
		})
	case apperror.KindNotFound:
		c.JSON(http.StatusNotFound, apierror.WithCode(string(apperror.KindNotFound), err.Error()))
	case apperror.KindConflict:
		c.JSON(http.StatusConflict, apierror.WithCode(string(apperror.KindConflict), err.Error()))
	case apperror.KindShiftNotOpen:
		c.JSON(http.StatusPreconditionFailed, apierror.WithCode(string(apperror.KindShiftNotOpen), err.Error()))
	case apperror.KindIntegrity:
		var ie *apperror.IntegrityError
		errors.As(err, &ie)
		// Clients branch on the reason, not on the detail text.
		code := ie.Reason
		if code == "" {
			code = string(apperror.KindIntegrity)
		}
		c.JSON(http.StatusConflict, apierror.WithCode(code, ie.Msg))
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Msg("erro não tratado")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}
