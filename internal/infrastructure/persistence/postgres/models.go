package postgres

import "time"

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	PKID        uint   `gorm:"column:pk_id;primaryKey;autoIncrement"`
	ID          string `gorm:"column:id;type:uuid;uniqueIndex;not null"`
	Name        string `gorm:"column:nome;type:varchar(10);uniqueIndex;not null"`
	Description string `gorm:"column:descricao;type:varchar(255)"`
}

func (CategoryModel) TableName() string {
	return "categorias"
}

// TrainingCenterModel é o model GORM para centros de treinamento
type TrainingCenterModel struct {
	PKID    uint   `gorm:"column:pk_id;primaryKey;autoIncrement"`
	ID      string `gorm:"column:id;type:uuid;uniqueIndex;not null"`
	Name    string `gorm:"column:nome;type:varchar(20);uniqueIndex;not null"`
	Address string `gorm:"column:endereco;type:varchar(60);not null"`
	Phone   string `gorm:"column:telefone;type:varchar(20)"`
}

func (TrainingCenterModel) TableName() string {
	return "centros_treinamento"
}

// AthleteModel é o model GORM para atletas
type AthleteModel struct {
	PKID             uint                 `gorm:"column:pk_id;primaryKey;autoIncrement"`
	ID               string               `gorm:"column:id;type:uuid;uniqueIndex;not null"`
	Name             string               `gorm:"column:nome;type:varchar(50);not null;index"`
	CPF              string               `gorm:"column:cpf;type:char(11);uniqueIndex;not null"`
	Weight           float64              `gorm:"column:peso;not null"`
	Height           float64              `gorm:"column:altura;not null"`
	Sex              string               `gorm:"column:sexo;type:char(1);not null"`
	CreatedAt        time.Time            `gorm:"column:created_at;not null"`
	CategoryID       uint                 `gorm:"column:categoria_id;not null;index"`
	Category         *CategoryModel       `gorm:"foreignKey:CategoryID;references:PKID"`
	TrainingCenterID uint                 `gorm:"column:centro_treinamento_id;not null;index"`
	TrainingCenter   *TrainingCenterModel `gorm:"foreignKey:TrainingCenterID;references:PKID"`
}

func (AthleteModel) TableName() string {
	return "atletas"
}

// Models lista os models na ordem de criação das tabelas
func Models() []interface{} {
	return []interface{}{&CategoryModel{}, &TrainingCenterModel{}, &AthleteModel{}}
}
