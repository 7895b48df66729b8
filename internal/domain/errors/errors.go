package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrCategoryNotFound       = errors.New("error.category_not_found")
	ErrTrainingCenterNotFound = errors.New("error.training_center_not_found")
	ErrAthleteNotFound        = errors.New("error.athlete_not_found")

	ErrCategoryAlreadyExists       = errors.New("error.category_already_exists")
	ErrTrainingCenterAlreadyExists = errors.New("error.training_center_already_exists")
	ErrCPFAlreadyExists            = errors.New("error.cpf_already_exists")

	ErrCategoryReferenceNotFound       = errors.New("error.category_reference_not_found")
	ErrTrainingCenterReferenceNotFound = errors.New("error.training_center_reference_not_found")
)

// Infrastructure errors
var (
	// ErrDuplicateKey é retornado pelos repositórios quando o banco rejeita
	// uma chave única (ex.: corrida entre duas requisições de criação).
	ErrDuplicateKey = errors.New("error.duplicate_key")
	ErrPersistence  = errors.New("error.persistence")
)

// Domain errors
var (
	ErrInvalidInput = errors.New("error.invalid_input")
	ErrInvalidCPF   = errors.New("error.invalid_cpf")
	ErrInvalidSex   = errors.New("error.invalid_sex")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeInternal   = "/problems/internal-error"
	ProblemTypeBadRequest = "/problems/bad-request"
)

// DomainError associa um erro de negócio (Kind) aos parâmetros usados na
// mensagem traduzida e, opcionalmente, à causa original.
type DomainError struct {
	Kind   error
	Params map[string]interface{}
	Err    error
}

// New cria um DomainError com parâmetros para interpolação
func New(kind error, params map[string]interface{}) *DomainError {
	return &DomainError{Kind: kind, Params: params}
}

// Wrap cria um DomainError carregando a causa original
func Wrap(kind error, cause error) *DomainError {
	return &DomainError{Kind: kind, Err: cause}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Err.Error()
	}
	return e.Kind.Error()
}

// Unwrap expõe Kind e a causa para errors.Is / errors.As
func (e *DomainError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// ParamsOf retorna os parâmetros de interpolação de err, se houver
func ParamsOf(err error) map[string]interface{} {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Params
	}
	return nil
}
