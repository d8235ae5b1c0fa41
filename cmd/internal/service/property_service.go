package service

import (
	"context"
	"imoveis/cmd/internal/contract"
	"imoveis/cmd/internal/domain/database/repository"
	"imoveis/cmd/internal/domain/entity"
	"imoveis/cmd/internal/utils"
	"imoveis/cmd/internal/utils/apierror"
	"imoveis/cmd/internal/utils/hateoas"
	"imoveis/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PropertyRepository interface {
	FindAll(ctx context.Context) ([]*entity.Property, error)
	FindByID(ctx context.Context, id int) (*entity.Property, error)
	FindByField(ctx context.Context, field repository.Field, value string) ([]*entity.Property, error)
	Insert(ctx context.Context, prop *entity.Property) (*entity.Property, error)
	Update(ctx context.Context, id int, prop *entity.Property) (*entity.Property, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type linkFunc func(id int, base string) contract.Links

type DefaultPropertyService struct {
	PropertyRepo PropertyRepository
	Validate     *validator.Validate
}

func NewPropertyService(propertyRepo PropertyRepository, validate *validator.Validate) *DefaultPropertyService {
	return &DefaultPropertyService{
		PropertyRepo: propertyRepo,
		Validate:     validate,
	}
}

func (p *DefaultPropertyService) GetAllProperties(ctx context.Context, baseURL string) ([]*contract.PropertyResponse, apierror.ErrorResponse) {
	props, err := p.PropertyRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch properties: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPropertyResponses(props, baseURL, hateoas.MemberLinks), nil
}

func (p *DefaultPropertyService) GetPropertyByID(ctx context.Context, baseURL string, id int) (*contract.PropertyResponse, apierror.ErrorResponse) {
	prop, err := p.PropertyRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch property %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if prop == nil {
		return nil, apierror.NotFoundError
	}
	return toPropertyResponse(prop, baseURL, hateoas.ResourceLinks), nil
}

func (p *DefaultPropertyService) GetPropertiesByType(ctx context.Context, baseURL, tipo string) ([]*contract.PropertyResponse, apierror.ErrorResponse) {
	return p.findByField(ctx, baseURL, repository.FieldTipo, tipo)
}

func (p *DefaultPropertyService) GetPropertiesByCity(ctx context.Context, baseURL, cidade string) ([]*contract.PropertyResponse, apierror.ErrorResponse) {
	return p.findByField(ctx, baseURL, repository.FieldCidade, cidade)
}

func (p *DefaultPropertyService) CreateProperty(ctx context.Context, baseURL string, payload contract.PropertyPayload) (*contract.PropertyResponse, apierror.ErrorResponse) {
	input, apierr := p.validatePayload(payload)
	if apierr != nil {
		return nil, apierr
	}

	created, err := p.PropertyRepo.Insert(ctx, toEntity(input))
	if err != nil {
		log.Errorf("failed to create property: %v", err)
		return nil, apierror.InternalServerError
	}

	log.Infof("property %d created", created.ID)
	return toPropertyResponse(created, baseURL, hateoas.MemberLinks), nil
}

// UpdateProperty fully replaces a property. Existence is checked before the
// payload, so an unknown id is a 404 even when the body is incomplete.
func (p *DefaultPropertyService) UpdateProperty(ctx context.Context, baseURL string, id int, payload contract.PropertyPayload) (*contract.PropertyResponse, apierror.ErrorResponse) {
	existing, err := p.PropertyRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch property %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if existing == nil {
		return nil, apierror.NotFoundError
	}

	input, apierr := p.validatePayload(payload)
	if apierr != nil {
		return nil, apierr
	}

	updated, err := p.PropertyRepo.Update(ctx, id, toEntity(input))
	if err != nil {
		log.Errorf("failed to update property %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	// Deleted between the check above and the write.
	if updated == nil {
		return nil, apierror.NotFoundError
	}
	return toPropertyResponse(updated, baseURL, hateoas.ResourceLinks), nil
}

func (p *DefaultPropertyService) DeleteProperty(ctx context.Context, id int) apierror.ErrorResponse {
	found, err := p.PropertyRepo.Delete(ctx, id)
	if err != nil {
		log.Errorf("failed to delete property %d: %v", id, err)
		return apierror.InternalServerError
	}

	if !found {
		return apierror.NotFoundError
	}

	log.Infof("property %d deleted", id)
	return nil
}

func (p *DefaultPropertyService) findByField(ctx context.Context, baseURL string, field repository.Field, value string) ([]*contract.PropertyResponse, apierror.ErrorResponse) {
	props, err := p.PropertyRepo.FindByField(ctx, field, value)
	if err != nil {
		log.Errorf("failed to fetch properties by %s=%q: %v", field, value, err)
		return nil, apierror.InternalServerError
	}
	return toPropertyResponses(props, baseURL, hateoas.MemberLinks), nil
}

func (p *DefaultPropertyService) validatePayload(payload contract.PropertyPayload) (*contract.PropertyInput, apierror.ErrorResponse) {
	if missing := validators.MissingFields(p.Validate, payload); len(missing) > 0 {
		return nil, apierror.NewMissingFieldsError(missing)
	}

	input, apierr := toPropertyInput(payload)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(input)
	return input, nil
}

func toEntity(input *contract.PropertyInput) *entity.Property {
	return &entity.Property{
		Logradouro:     input.Logradouro,
		TipoLogradouro: input.TipoLogradouro,
		Bairro:         input.Bairro,
		Cidade:         input.Cidade,
		CEP:            input.CEP,
		Tipo:           input.Tipo,
		Valor:          input.Valor,
		DataAquisicao:  input.DataAquisicao,
	}
}

func toPropertyResponses(props []*entity.Property, baseURL string, links linkFunc) []*contract.PropertyResponse {
	resp := make([]*contract.PropertyResponse, len(props))
	for i, prop := range props {
		resp[i] = toPropertyResponse(prop, baseURL, links)
	}
	return resp
}

func toPropertyResponse(prop *entity.Property, baseURL string, links linkFunc) *contract.PropertyResponse {
	return &contract.PropertyResponse{
		ID:             prop.ID,
		Logradouro:     prop.Logradouro,
		TipoLogradouro: prop.TipoLogradouro,
		Bairro:         prop.Bairro,
		Cidade:         prop.Cidade,
		CEP:            prop.CEP,
		Tipo:           prop.Tipo,
		Valor:          prop.Valor,
		DataAquisicao:  prop.DataAquisicao,
		Links:          links(prop.ID, baseURL),
	}
}
