package services_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/sqlitetest"
	"github.com/rafabene/workout-api/internal/services"
)

// failingAthleteRepository simula uma falha do banco na inserção
type failingAthleteRepository struct {
	repositories.AthleteRepository
	err error
}

func (r *failingAthleteRepository) Create(ctx context.Context, athlete *entities.Athlete) error {
	return r.err
}

// countingAthleteRepository conta as escritas de atualização
type countingAthleteRepository struct {
	repositories.AthleteRepository
	updates int
}

func (r *countingAthleteRepository) Update(ctx context.Context, athlete *entities.Athlete) error {
	r.updates++
	return r.AthleteRepository.Update(ctx, athlete)
}

var _ = Describe("AthleteService", func() {
	var (
		ctx          context.Context
		service      *services.AthleteService
		athleteRepo  repositories.AthleteRepository
		categoryRepo repositories.CategoryRepository
		centerRepo   repositories.TrainingCenterRepository
		uow          *postgres.UnitOfWork
		input        services.CreateAthleteInput
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := sqlitetest.Open(GinkgoT())

		athleteRepo = postgres.NewAthleteRepository(db)
		categoryRepo = postgres.NewCategoryRepository(db)
		centerRepo = postgres.NewTrainingCenterRepository(db)
		uow = postgres.NewUnitOfWork(db).(*postgres.UnitOfWork)

		service = services.NewAthleteService(athleteRepo, categoryRepo, centerRepo, uow, newTestLogger())

		Expect(categoryRepo.Create(ctx, &entities.Category{ID: uuid.NewString(), Name: "Scale"})).To(Succeed())
		Expect(centerRepo.Create(ctx, &entities.TrainingCenter{ID: uuid.NewString(), Name: "CT King", Address: "Rua X"})).To(Succeed())

		input = services.CreateAthleteInput{
			Name:               "João",
			CPF:                "12345678909",
			Weight:             75.5,
			Height:             1.70,
			Sex:                "M",
			CategoryName:       "Scale",
			TrainingCenterName: "CT King",
		}
	})

	Describe("CreateAthlete", func() {
		It("cria o atleta com UUID novo e data de criação", func() {
			athlete, err := service.CreateAthlete(ctx, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(uuid.Validate(athlete.ID)).To(Succeed())
			Expect(athlete.CreatedAt).NotTo(BeZero())
			Expect(athlete.Category.Name).To(Equal("Scale"))
			Expect(athlete.TrainingCenter.Name).To(Equal("CT King"))
		})

		It("aceita CPF pontuado e o guarda normalizado", func() {
			input.CPF = "123.456.789-09"

			athlete, err := service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(athlete.CPF.String()).To(Equal("12345678909"))
		})

		It("rejeita categoria inexistente", func() {
			input.CategoryName = "RX"

			_, err := service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrCategoryReferenceNotFound))
			Expect(domainerrors.ParamsOf(err)).To(HaveKeyWithValue("Name", "RX"))
		})

		It("rejeita centro de treinamento inexistente", func() {
			input.TrainingCenterName = "CT Queen"

			_, err := service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrTrainingCenterReferenceNotFound))
		})

		It("rejeita um segundo atleta com o mesmo CPF", func() {
			first, err := service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			input.Name = "Outro"
			_, err = service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrCPFAlreadyExists))
			Expect(domainerrors.ParamsOf(err)).To(HaveKeyWithValue("ID", first.ID))
		})

		It("rejeita sexo inválido", func() {
			input.Sex = "X"

			_, err := service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrInvalidInput))
			Expect(err).To(MatchError(domainerrors.ErrInvalidSex))
		})

		It("envolve falhas de persistência com a causa original", func() {
			cause := errors.New("connection reset")
			failing := &failingAthleteRepository{AthleteRepository: athleteRepo, err: cause}
			service = services.NewAthleteService(failing, categoryRepo, centerRepo, uow, newTestLogger())

			_, err := service.CreateAthlete(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrPersistence))
			Expect(err).To(MatchError(cause))
			Expect(err.Error()).To(ContainSubstring("connection reset"))
		})
	})

	Describe("ListAthletes", func() {
		BeforeEach(func() {
			_, err := service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			input.Name = "Joana"
			input.CPF = "98765432100"
			input.Sex = "F"
			_, err = service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())
		})

		It("filtra por nome exato", func() {
			name := "João"
			athletes, err := service.ListAthletes(ctx, repositories.AthleteFilters{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(athletes).To(HaveLen(1))
			Expect(athletes[0].Name).To(Equal("João"))
		})

		It("filtra por CPF pontuado", func() {
			cpf := "987.654.321-00"
			athletes, err := service.ListAthletes(ctx, repositories.AthleteFilters{CPF: &cpf})
			Expect(err).NotTo(HaveOccurred())
			Expect(athletes).To(HaveLen(1))
			Expect(athletes[0].Name).To(Equal("Joana"))
		})

		It("retorna todos sem filtros", func() {
			athletes, err := service.ListAthletes(ctx, repositories.AthleteFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(athletes).To(HaveLen(2))
		})
	})

	Describe("UpdateAthlete", func() {
		var created *entities.Athlete

		BeforeEach(func() {
			var err error
			created, err = service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())
		})

		It("altera apenas os campos enviados", func() {
			weight := 80.0

			updated, err := service.UpdateAthlete(ctx, created.ID, entities.AthleteUpdate{Weight: &weight})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Weight).To(Equal(80.0))
			Expect(updated.Name).To(Equal("João"))
			Expect(updated.Height).To(Equal(1.70))
			Expect(updated.Category.Name).To(Equal("Scale"))
		})

		It("atualização vazia devolve o atleta sem alterações", func() {
			updated, err := service.UpdateAthlete(ctx, created.ID, entities.AthleteUpdate{})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ID).To(Equal(created.ID))
			Expect(updated.Weight).To(Equal(75.5))
		})

		It("atualização vazia não escreve no banco", func() {
			counting := &countingAthleteRepository{AthleteRepository: athleteRepo}
			service = services.NewAthleteService(counting, categoryRepo, centerRepo, uow, newTestLogger())

			_, err := service.UpdateAthlete(ctx, created.ID, entities.AthleteUpdate{})
			Expect(err).NotTo(HaveOccurred())
			Expect(counting.updates).To(BeZero())

			name := "João Pedro"
			_, err = service.UpdateAthlete(ctx, created.ID, entities.AthleteUpdate{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(counting.updates).To(Equal(1))
		})

		It("retorna not found para id inexistente com atualização vazia", func() {
			_, err := service.UpdateAthlete(ctx, uuid.NewString(), entities.AthleteUpdate{})
			Expect(err).To(MatchError(domainerrors.ErrAthleteNotFound))
		})

		It("retorna not found para id inexistente", func() {
			weight := 80.0
			_, err := service.UpdateAthlete(ctx, uuid.NewString(), entities.AthleteUpdate{Weight: &weight})
			Expect(err).To(MatchError(domainerrors.ErrAthleteNotFound))
		})
	})

	Describe("DeleteAthlete", func() {
		It("remove o atleta e depois retorna not found", func() {
			created, err := service.CreateAthlete(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteAthlete(ctx, created.ID)).To(Succeed())

			_, err = service.GetAthlete(ctx, created.ID)
			Expect(err).To(MatchError(domainerrors.ErrAthleteNotFound))

			Expect(service.DeleteAthlete(ctx, created.ID)).To(MatchError(domainerrors.ErrAthleteNotFound))
		})
	})
})
