package repository

import (
	"context"
	"errors"
	"fmt"
	"imoveis/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// Field is a column the collection can be filtered by.
type Field string

const (
	FieldTipo   Field = "tipo"
	FieldCidade Field = "cidade"
)

var errPropertyNotFound = errors.New("property not found")

const (
	selectAll  = "SELECT " + PropertyColumns + " FROM imoveis"
	selectByID = selectAll + " WHERE id = ?"
	updateByID = `UPDATE imoveis
		SET logradouro = ?, tipo_logradouro = ?, bairro = ?, cidade = ?, cep = ?, tipo = ?, valor = ?, data_aquisicao = ?
		WHERE id = ?`
)

type DefaultPropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *DefaultPropertyRepository {
	return &DefaultPropertyRepository{db: db}
}

func (r *DefaultPropertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	props, err := queryProperties(r.db.WithContext(ctx), selectAll)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return props, nil
}

func (r *DefaultPropertyRepository) FindByID(ctx context.Context, id int) (*entity.Property, error) {
	prop, err := findByID(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, fmt.Errorf("find property %d: %w", id, err)
	}
	return prop, nil
}

func (r *DefaultPropertyRepository) FindByField(ctx context.Context, field Field, value string) ([]*entity.Property, error) {
	switch field {
	case FieldTipo, FieldCidade:
	default:
		return nil, fmt.Errorf("unsupported filter field %q", field)
	}

	props, err := queryProperties(r.db.WithContext(ctx), selectAll+" WHERE "+string(field)+" = ?", value)
	if err != nil {
		return nil, fmt.Errorf("find properties by %s: %w", field, err)
	}
	return props, nil
}

// Insert stores prop and returns the row as persisted, including the
// storage-assigned id. The ID field of prop is ignored.
func (r *DefaultPropertyRepository) Insert(ctx context.Context, prop *entity.Property) (*entity.Property, error) {
	var created *entity.Property
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := *prop
		row.ID = 0
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		var err error
		created, err = findByID(tx, row.ID)
		if err != nil {
			return err
		}
		if created == nil {
			return fmt.Errorf("inserted row %d not readable", row.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}
	return created, nil
}

// Update replaces every field of the property with the given id and returns
// the row as stored afterwards. It returns (nil, nil) if the id does not
// exist, in which case nothing is written. The existence check and the
// write are separate statements.
func (r *DefaultPropertyRepository) Update(ctx context.Context, id int, prop *entity.Property) (*entity.Property, error) {
	var updated *entity.Property
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findByID(tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errPropertyNotFound
		}

		err = tx.Exec(updateByID,
			prop.Logradouro,
			prop.TipoLogradouro,
			prop.Bairro,
			prop.Cidade,
			prop.CEP,
			prop.Tipo,
			prop.Valor,
			prop.DataAquisicao,
			id,
		).Error
		if err != nil {
			return err
		}

		updated, err = findByID(tx, id)
		return err
	})

	if errors.Is(err, errPropertyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update property %d: %w", id, err)
	}
	return updated, nil
}

// Delete physically removes the property. It reports false, without
// writing anything, when the id does not exist.
func (r *DefaultPropertyRepository) Delete(ctx context.Context, id int) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findByID(tx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errPropertyNotFound
		}
		return tx.Delete(&entity.Property{}, id).Error
	})

	if errors.Is(err, errPropertyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete property %d: %w", id, err)
	}
	return true, nil
}

func findByID(db *gorm.DB, id int) (*entity.Property, error) {
	props, err := queryProperties(db, selectByID, id)
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		return nil, nil
	}
	return props[0], nil
}

// queryProperties runs a raw select over PropertyColumns and maps every
// row. The cursor is drained and closed before returning, so the same
// connection can be reused right after.
func queryProperties(db *gorm.DB, query string, args ...any) ([]*entity.Property, error) {
	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	props := []*entity.Property{}
	for rows.Next() {
		row := make([]any, propertyColumnCount)
		ptrs := make([]any, propertyColumnCount)
		for i := range row {
			ptrs[i] = &row[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		prop, err := RowToProperty(row)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return props, nil
}
