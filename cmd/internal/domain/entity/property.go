package entity

// Property is a single real estate record (imóvel).
// Column order matters: the repository selects and maps rows positionally.
type Property struct {
	ID             int     `gorm:"primaryKey;autoIncrement;column:id"`
	Logradouro     string  `gorm:"not null;column:logradouro"`
	TipoLogradouro string  `gorm:"not null;column:tipo_logradouro"`
	Bairro         string  `gorm:"not null;column:bairro"`
	Cidade         string  `gorm:"not null;column:cidade;index"`
	CEP            string  `gorm:"not null;column:cep"`
	Tipo           string  `gorm:"not null;column:tipo;index"`
	Valor          float64 `gorm:"not null;column:valor"`
	DataAquisicao  string  `gorm:"not null;column:data_aquisicao;type:date"`
}

func (Property) TableName() string {
	return "imoveis"
}
