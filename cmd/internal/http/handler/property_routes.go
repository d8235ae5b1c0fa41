package handler

import (
	"context"
	"fmt"
	"imoveis/cmd/internal/contract"
	"imoveis/cmd/internal/utils"
	"imoveis/cmd/internal/utils/apierror"
	"imoveis/cmd/internal/utils/hateoas"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type PropertyService interface {
	GetAllProperties(ctx context.Context, baseURL string) ([]*contract.PropertyResponse, apierror.ErrorResponse)
	GetPropertyByID(ctx context.Context, baseURL string, id int) (*contract.PropertyResponse, apierror.ErrorResponse)
	GetPropertiesByType(ctx context.Context, baseURL, tipo string) ([]*contract.PropertyResponse, apierror.ErrorResponse)
	GetPropertiesByCity(ctx context.Context, baseURL, cidade string) ([]*contract.PropertyResponse, apierror.ErrorResponse)
	CreateProperty(ctx context.Context, baseURL string, payload contract.PropertyPayload) (*contract.PropertyResponse, apierror.ErrorResponse)
	UpdateProperty(ctx context.Context, baseURL string, id int, payload contract.PropertyPayload) (*contract.PropertyResponse, apierror.ErrorResponse)
	DeleteProperty(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultPropertyRoute struct {
	PropertyService PropertyService
}

func NewPropertyDefault(propertyService PropertyService) *DefaultPropertyRoute {
	return &DefaultPropertyRoute{PropertyService: propertyService}
}

func (p *DefaultPropertyRoute) GetProperties(c echo.Context) error {
	base, cerr := utils.GetBaseURLFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	props, apierr := p.PropertyService.GetAllProperties(c.Request().Context(), base)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, props)
}

func (p *DefaultPropertyRoute) GetProperty(c echo.Context) error {
	base, cerr := utils.GetBaseURLFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	prop, apierr := p.PropertyService.GetPropertyByID(c.Request().Context(), base, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, prop)
}

func (p *DefaultPropertyRoute) GetPropertiesByType(c echo.Context) error {
	base, cerr := utils.GetBaseURLFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	tipo, perr := filterParam(c, "tipo")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	props, apierr := p.PropertyService.GetPropertiesByType(c.Request().Context(), base, tipo)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, props)
}

func (p *DefaultPropertyRoute) GetPropertiesByCity(c echo.Context) error {
	base, cerr := utils.GetBaseURLFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	cidade, perr := filterParam(c, "cidade")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	props, apierr := p.PropertyService.GetPropertiesByCity(c.Request().Context(), base, cidade)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, props)
}

func (p *DefaultPropertyRoute) CreateProperty(c echo.Context) error {
	base, cerr := utils.GetBaseURLFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var payload contract.PropertyPayload
	if err := bindPayload(c, &payload); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	prop, apierr := p.PropertyService.CreateProperty(c.Request().Context(), base, payload)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderLocation, hateoas.ResourceURL(prop.ID, base))
	return c.JSON(http.StatusCreated, prop)
}

func (p *DefaultPropertyRoute) UpdateProperty(c echo.Context) error {
	base, cerr := utils.GetBaseURLFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var payload contract.PropertyPayload
	if err = bindPayload(c, &payload); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	prop, apierr := p.PropertyService.UpdateProperty(c.Request().Context(), base, id, payload)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, prop)
}

func (p *DefaultPropertyRoute) DeleteProperty(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	apierr := p.PropertyService.DeleteProperty(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &contract.MessageResponse{
		Message: fmt.Sprintf("Property %d deleted", id),
	})
}

// filterParam reads a path parameter used as a filter value. echo routes
// on URL.RawPath whenever the client escaped the path differently from Go
// (e.g. a literal apostrophe), and then leaves the value percent-encoded.
func filterParam(c echo.Context, name string) (string, apierror.ErrorResponse) {
	value := c.Param(name)
	if c.Request().URL.RawPath != "" {
		decoded, err := url.PathUnescape(value)
		if err != nil {
			return "", apierror.NewInvalidParamEncodingError(name)
		}
		value = decoded
	}
	return strings.TrimSpace(value), nil
}

// bindPayload decodes only the request body, so path params never end up
// as payload keys.
func bindPayload(c echo.Context, payload *contract.PropertyPayload) error {
	return (&echo.DefaultBinder{}).BindBody(c, payload)
}
