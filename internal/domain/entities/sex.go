package entities

// Sex representa o sexo declarado do atleta
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// IsValid verifica se o valor é um dos sexos aceitos
func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}
