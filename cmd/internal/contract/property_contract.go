package contract

// Link relation names.
const (
	RelSelf       = "self"
	RelUpdate     = "update"
	RelDelete     = "delete"
	RelCollection = "collection"
)

// RequiredPropertyFields are the payload keys needed on create and on full update.
var RequiredPropertyFields = []string{
	"logradouro",
	"tipo_logradouro",
	"bairro",
	"cidade",
	"cep",
	"tipo",
	"valor",
	"data_aquisicao",
}

type Link struct {
	Href   string `json:"href"`
	Method string `json:"method"`
}

type Links map[string]Link

type PropertyResponse struct {
	ID             int     `json:"id"`
	Logradouro     string  `json:"logradouro"`
	TipoLogradouro string  `json:"tipo_logradouro"`
	Bairro         string  `json:"bairro"`
	Cidade         string  `json:"cidade"`
	CEP            string  `json:"cep"`
	Tipo           string  `json:"tipo"`
	Valor          float64 `json:"valor"`
	DataAquisicao  string  `json:"data_aquisicao"`
	Links          Links   `json:"links"`
}

// PropertyPayload is the raw JSON body of create/update requests.
// Keys are checked for presence before being coerced into PropertyInput.
type PropertyPayload map[string]any

type PropertyInput struct {
	Logradouro     string
	TipoLogradouro string
	Bairro         string
	Cidade         string
	CEP            string
	Tipo           string
	Valor          float64
	DataAquisicao  string
}

type MessageResponse struct {
	Message string `json:"message"`
}
