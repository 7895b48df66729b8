package services_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/sqlitetest"
	"github.com/rafabene/workout-api/internal/services"
)

var _ = Describe("TrainingCenterService", func() {
	var (
		ctx     context.Context
		service *services.TrainingCenterService
		input   services.CreateTrainingCenterInput
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := sqlitetest.Open(GinkgoT())
		service = services.NewTrainingCenterService(
			postgres.NewTrainingCenterRepository(db),
			postgres.NewUnitOfWork(db),
			newTestLogger(),
		)
		input = services.CreateTrainingCenterInput{
			Name:    "CT King",
			Address: "Rua X, Q02",
			Phone:   "11999990000",
		}
	})

	It("cria e busca um centro de treinamento", func() {
		created, err := service.CreateTrainingCenter(ctx, input)
		Expect(err).NotTo(HaveOccurred())
		Expect(uuid.Validate(created.ID)).To(Succeed())

		found, err := service.GetTrainingCenter(ctx, created.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Address).To(Equal("Rua X, Q02"))
		Expect(found.Phone).To(Equal("11999990000"))
	})

	It("rejeita nome duplicado", func() {
		_, err := service.CreateTrainingCenter(ctx, input)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.CreateTrainingCenter(ctx, input)
		Expect(err).To(MatchError(domainerrors.ErrTrainingCenterAlreadyExists))
	})

	It("retorna not found para id inexistente", func() {
		_, err := service.GetTrainingCenter(ctx, uuid.NewString())
		Expect(err).To(MatchError(domainerrors.ErrTrainingCenterNotFound))
	})

	It("lista os centros criados", func() {
		_, err := service.CreateTrainingCenter(ctx, input)
		Expect(err).NotTo(HaveOccurred())

		centers, err := service.ListTrainingCenters(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(centers).To(HaveLen(1))
	})
})
