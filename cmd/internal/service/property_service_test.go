package service

import (
	"context"
	"errors"
	"imoveis/cmd/internal/config"
	"imoveis/cmd/internal/contract"
	"imoveis/cmd/internal/domain/database"
	"imoveis/cmd/internal/domain/database/repository"
	"imoveis/cmd/internal/domain/entity"
	"imoveis/cmd/internal/utils/apierror"
	"imoveis/cmd/internal/utils/validators"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "http://host/properties"

// stubRepository records mutations and can be told to fail.
type stubRepository struct {
	props   map[int]*entity.Property
	err     error
	inserts int
	updates int
	deletes int
}

func newStubRepository() *stubRepository {
	return &stubRepository{props: map[int]*entity.Property{}}
}

func (s *stubRepository) FindAll(context.Context) ([]*entity.Property, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Property
	for _, p := range s.props {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubRepository) FindByID(_ context.Context, id int) (*entity.Property, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.props[id], nil
}

func (s *stubRepository) FindByField(context.Context, repository.Field, string) ([]*entity.Property, error) {
	return nil, s.err
}

func (s *stubRepository) Insert(_ context.Context, prop *entity.Property) (*entity.Property, error) {
	s.inserts++
	if s.err != nil {
		return nil, s.err
	}
	created := *prop
	created.ID = len(s.props) + 1
	s.props[created.ID] = &created
	return &created, nil
}

func (s *stubRepository) Update(_ context.Context, id int, prop *entity.Property) (*entity.Property, error) {
	s.updates++
	return nil, s.err
}

func (s *stubRepository) Delete(_ context.Context, id int) (bool, error) {
	s.deletes++
	return false, s.err
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation(validators.TagPresent, validators.Present))
	return validate
}

func newSQLiteService(t *testing.T) *DefaultPropertyService {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: database.DriverSQLite, DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return NewPropertyService(repository.NewPropertyRepository(db), newValidate(t))
}

func validPayload() contract.PropertyPayload {
	return contract.PropertyPayload{
		"logradouro":      "Rua A",
		"tipo_logradouro": "Rua",
		"bairro":          "Centro",
		"cidade":          "X",
		"cep":             "00000",
		"tipo":            "casa",
		"valor":           100.0,
		"data_aquisicao":  "2024-01-01",
	}
}

func TestCreateProperty_RoundTrip(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	created, apierr := svc.CreateProperty(ctx, testBase, validPayload())
	require.Nil(t, apierr)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Rua A", created.Logradouro)
	assert.Equal(t, "00000", created.CEP)
	assert.Equal(t, 100.0, created.Valor)
	assert.Equal(t, "2024-01-01", created.DataAquisicao)
	assert.Equal(t, contract.Links{
		contract.RelSelf: {Href: testBase + "/1", Method: http.MethodGet},
	}, created.Links)

	found, apierr := svc.GetPropertyByID(ctx, testBase, created.ID)
	require.Nil(t, apierr)
	assert.Len(t, found.Links, 4)

	found.Links, created.Links = nil, nil
	assert.Equal(t, created, found)
}

func TestCreateProperty_TrimsAndCoerces(t *testing.T) {
	svc := newSQLiteService(t)

	payload := validPayload()
	payload["logradouro"] = "  Rua B  "
	payload["cep"] = 13025000.0
	payload["valor"] = "250000.75"

	created, apierr := svc.CreateProperty(context.Background(), testBase, payload)
	require.Nil(t, apierr)

	assert.Equal(t, "Rua B", created.Logradouro)
	assert.Equal(t, "13025000", created.CEP)
	assert.Equal(t, 250000.75, created.Valor)
}

func TestCreateProperty_MissingFields(t *testing.T) {
	repo := newStubRepository()
	svc := NewPropertyService(repo, newValidate(t))

	payload := validPayload()
	delete(payload, "cep")
	delete(payload, "valor")

	_, apierr := svc.CreateProperty(context.Background(), testBase, payload)
	require.NotNil(t, apierr)

	missing, ok := apierr.(*apierror.MissingFieldsError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, missing.Code())
	assert.ElementsMatch(t, []string{"cep", "valor"}, missing.Fields)
	assert.Zero(t, repo.inserts)
}

func TestCreateProperty_InvalidValues(t *testing.T) {
	repo := newStubRepository()
	svc := NewPropertyService(repo, newValidate(t))

	payload := validPayload()
	payload["valor"] = "cem mil"
	payload["bairro"] = map[string]any{"nome": "Centro"}

	_, apierr := svc.CreateProperty(context.Background(), testBase, payload)
	require.NotNil(t, apierr)

	structured, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, structured.Code())
	assert.Contains(t, structured.Errors, "valor")
	assert.Contains(t, structured.Errors, "bairro")
	assert.Zero(t, repo.inserts)
}

func TestCreateProperty_StorageFailure(t *testing.T) {
	repo := newStubRepository()
	repo.err = errors.New("disk I/O error")
	svc := NewPropertyService(repo, newValidate(t))

	_, apierr := svc.CreateProperty(context.Background(), testBase, validPayload())
	assert.Equal(t, apierror.InternalServerError, apierr)
}

func TestGetPropertyByID_Absent(t *testing.T) {
	svc := newSQLiteService(t)

	prop, apierr := svc.GetPropertyByID(context.Background(), testBase, 999)
	assert.Nil(t, prop)
	assert.Equal(t, apierror.NotFoundError, apierr)
}

func TestGetPropertyByID_StorageFailure(t *testing.T) {
	repo := newStubRepository()
	repo.err = errors.New("connection refused")
	svc := NewPropertyService(repo, newValidate(t))

	_, apierr := svc.GetPropertyByID(context.Background(), testBase, 1)
	assert.Equal(t, apierror.InternalServerError, apierr)
}

func TestGetAllProperties_MemberLinks(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, apierr := svc.CreateProperty(ctx, testBase, validPayload())
		require.Nil(t, apierr)
	}

	props, apierr := svc.GetAllProperties(ctx, testBase)
	require.Nil(t, apierr)
	require.Len(t, props, 2)
	for _, p := range props {
		assert.Len(t, p.Links, 1)
		assert.Contains(t, p.Links, contract.RelSelf)
	}
}

func TestGetPropertiesByTypeAndCity(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	flat := validPayload()
	flat["tipo"] = "apartamento"
	flat["cidade"] = "Campinas"

	for _, p := range []contract.PropertyPayload{validPayload(), validPayload(), flat} {
		_, apierr := svc.CreateProperty(ctx, testBase, p)
		require.Nil(t, apierr)
	}

	houses, apierr := svc.GetPropertiesByType(ctx, testBase, "casa")
	require.Nil(t, apierr)
	assert.Len(t, houses, 2)

	inCampinas, apierr := svc.GetPropertiesByCity(ctx, testBase, "Campinas")
	require.Nil(t, apierr)
	require.Len(t, inCampinas, 1)
	assert.Equal(t, "apartamento", inCampinas[0].Tipo)

	none, apierr := svc.GetPropertiesByType(ctx, testBase, "terreno")
	require.Nil(t, apierr)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateProperty(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	created, apierr := svc.CreateProperty(ctx, testBase, validPayload())
	require.Nil(t, apierr)

	payload := validPayload()
	payload["valor"] = 120000.0
	payload["bairro"] = "Cambuí"

	updated, apierr := svc.UpdateProperty(ctx, testBase, created.ID, payload)
	require.Nil(t, apierr)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 120000.0, updated.Valor)
	assert.Equal(t, "Cambuí", updated.Bairro)
	assert.Len(t, updated.Links, 4)
}

func TestUpdateProperty_AbsentBeatsValidation(t *testing.T) {
	repo := newStubRepository()
	svc := NewPropertyService(repo, newValidate(t))

	_, apierr := svc.UpdateProperty(context.Background(), testBase, 999, contract.PropertyPayload{})
	assert.Equal(t, apierror.NotFoundError, apierr)
	assert.Zero(t, repo.updates)
}

func TestUpdateProperty_IncompletePayload(t *testing.T) {
	repo := newStubRepository()
	repo.props[1] = &entity.Property{ID: 1}
	svc := NewPropertyService(repo, newValidate(t))

	payload := validPayload()
	delete(payload, "tipo")

	_, apierr := svc.UpdateProperty(context.Background(), testBase, 1, payload)
	require.IsType(t, &apierror.MissingFieldsError{}, apierr)
	assert.Equal(t, []string{"tipo"}, apierr.(*apierror.MissingFieldsError).Fields)
	assert.Zero(t, repo.updates)
}

func TestUpdateProperty_DeletedConcurrently(t *testing.T) {
	repo := newStubRepository()
	repo.props[1] = &entity.Property{ID: 1}
	svc := NewPropertyService(repo, newValidate(t))

	_, apierr := svc.UpdateProperty(context.Background(), testBase, 1, validPayload())
	assert.Equal(t, apierror.NotFoundError, apierr)
	assert.Equal(t, 1, repo.updates)
}

func TestDeleteProperty(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	created, apierr := svc.CreateProperty(ctx, testBase, validPayload())
	require.Nil(t, apierr)

	assert.Nil(t, svc.DeleteProperty(ctx, created.ID))
	assert.Equal(t, apierror.NotFoundError, svc.DeleteProperty(ctx, created.ID))
}

func TestDeleteProperty_StorageFailure(t *testing.T) {
	repo := newStubRepository()
	repo.err = errors.New("database is locked")
	svc := NewPropertyService(repo, newValidate(t))

	assert.Equal(t, apierror.InternalServerError, svc.DeleteProperty(context.Background(), 1))
}
