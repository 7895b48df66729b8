package http_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	httphandlers "github.com/rafabene/workout-api/internal/handlers/http"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/sqlitetest"
)

const athletePayload = `{
	"nome": "João",
	"cpf": "12345678909",
	"peso": 75.5,
	"altura": 1.70,
	"sexo": "M",
	"categoria": {"nome": "Scale"},
	"centro_treinamento": {"nome": "CT King"}
}`

var _ = Describe("AthleteHandler", func() {
	var (
		db     *gorm.DB
		router *gin.Engine
	)

	createAthlete := func(payload string) map[string]interface{} {
		w := perform(router, http.MethodPost, "/atleta/", payload)
		ExpectWithOffset(1, w.Code).To(Equal(http.StatusCreated), w.Body.String())
		return decode(w)
	}

	BeforeEach(func() {
		db = sqlitetest.Open(GinkgoT())
		router = newRouter(db, httphandlers.ErrorOptions{ExposeErrorCauses: true})

		Expect(perform(router, http.MethodPost, "/categoria/", `{"nome": "Scale"}`).Code).To(Equal(http.StatusCreated))
		Expect(perform(router, http.MethodPost, "/centro_treinamento/", centerPayload).Code).To(Equal(http.StatusCreated))
	})

	Describe("POST /atleta/", func() {
		It("cria o atleta com categoria e centro de treinamento", func() {
			athlete := createAthlete(athletePayload)

			Expect(uuid.Validate(athlete["id"].(string))).To(Succeed())
			Expect(athlete["created_at"]).NotTo(BeEmpty())
			Expect(athlete).To(SatisfyAll(
				HaveKeyWithValue("nome", "João"),
				HaveKeyWithValue("cpf", "12345678909"),
				HaveKeyWithValue("peso", BeNumerically("==", 75.5)),
				HaveKeyWithValue("altura", BeNumerically("~", 1.70)),
				HaveKeyWithValue("sexo", "M"),
			))
			Expect(athlete["categoria"]).To(HaveKeyWithValue("nome", "Scale"))
			Expect(athlete["centro_treinamento"]).To(HaveKeyWithValue("nome", "CT King"))
		})

		It("recusa um segundo atleta com o mesmo CPF", func() {
			first := createAthlete(athletePayload)

			w := perform(router, http.MethodPost, "/atleta/", athletePayload)
			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Location")).To(Equal("/atleta/" + first["id"].(string)))
			Expect(decode(w)["detail"]).To(Equal("Já existe um atleta cadastrado com o cpf: 12345678909"))

			page := decode(perform(router, http.MethodGet, "/atleta/", ""))
			Expect(page["total"]).To(BeNumerically("==", 1))
		})

		It("recusa categoria inexistente com 400", func() {
			payload := `{"nome": "João", "cpf": "12345678909", "peso": 75.5, "altura": 1.70, "sexo": "M",
				"categoria": {"nome": "RX"}, "centro_treinamento": {"nome": "CT King"}}`

			w := perform(router, http.MethodPost, "/atleta/", payload)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["detail"]).To(Equal("A categoria RX não foi encontrada"))
		})

		It("recusa centro de treinamento inexistente com 400", func() {
			payload := `{"nome": "João", "cpf": "12345678909", "peso": 75.5, "altura": 1.70, "sexo": "M",
				"categoria": {"nome": "Scale"}, "centro_treinamento": {"nome": "CT Queen"}}`

			w := perform(router, http.MethodPost, "/atleta/", payload)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["detail"]).To(Equal("O centro de treinamento CT Queen não foi encontrado"))
		})

		It("valida cpf, sexo e referências aninhadas", func() {
			payload := `{"nome": "João", "cpf": "123", "peso": 75.5, "altura": 1.70, "sexo": "X",
				"categoria": {}, "centro_treinamento": {"nome": "CT King"}}`

			w := perform(router, http.MethodPost, "/atleta/", payload)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			errs := decode(w)["errors"]
			Expect(errs).To(ContainElement(HaveKeyWithValue("tag", "cpf")))
			Expect(errs).To(ContainElement(HaveKeyWithValue("tag", "sexo")))
			Expect(errs).To(ContainElement(HaveKeyWithValue("field", "categoria.nome")))
		})

		It("recusa tipo errado no JSON", func() {
			w := perform(router, http.MethodPost, "/atleta/", `{"peso": "pesado"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["errors"]).To(ContainElement(HaveKeyWithValue("tag", "type")))
		})
	})

	Describe("GET /atleta/", func() {
		BeforeEach(func() {
			createAthlete(athletePayload)
			createAthlete(`{"nome": "Joana", "cpf": "987.654.321-00", "peso": 60, "altura": 1.65, "sexo": "F",
				"categoria": {"nome": "Scale"}, "centro_treinamento": {"nome": "CT King"}}`)
		})

		It("filtra por nome exato", func() {
			page := decode(perform(router, http.MethodGet, "/atleta/?nome=Joana", ""))
			Expect(page["items"]).To(ConsistOf(HaveKeyWithValue("nome", "Joana")))
		})

		It("filtra por CPF", func() {
			page := decode(perform(router, http.MethodGet, "/atleta/?cpf=12345678909", ""))
			Expect(page["items"]).To(ConsistOf(HaveKeyWithValue("nome", "João")))
		})

		It("devolve a projeção reduzida, sem categoria e centro", func() {
			page := decode(perform(router, http.MethodGet, "/atleta/", ""))

			items := page["items"].([]interface{})
			Expect(items).To(HaveLen(2))
			for _, item := range items {
				Expect(item).To(HaveKey("cpf"))
				Expect(item).NotTo(HaveKey("categoria"))
				Expect(item).NotTo(HaveKey("centro_treinamento"))
			}
		})
	})

	Describe("PATCH /atleta/:id", func() {
		var id string

		BeforeEach(func() {
			id = createAthlete(athletePayload)["id"].(string)
		})

		It("altera apenas os campos enviados", func() {
			w := perform(router, http.MethodPatch, "/atleta/"+id, `{"peso": 80}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			Expect(decode(w)).To(SatisfyAll(
				HaveKeyWithValue("peso", BeNumerically("==", 80)),
				HaveKeyWithValue("altura", BeNumerically("~", 1.70)),
				HaveKeyWithValue("nome", "João"),
			))
		})

		It("aceita corpo vazio sem alterar nada", func() {
			w := perform(router, http.MethodPatch, "/atleta/"+id, "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(HaveKeyWithValue("peso", BeNumerically("==", 75.5)))

			w = perform(router, http.MethodPatch, "/atleta/"+id, `{}`)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("valida os campos enviados", func() {
			w := perform(router, http.MethodPatch, "/atleta/"+id, `{"sexo": "X"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("retorna 404 para id inexistente", func() {
			w := perform(router, http.MethodPatch, "/atleta/"+uuid.NewString(), `{"peso": 80}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /atleta/:id", func() {
		It("remove o atleta e a consulta seguinte retorna 404", func() {
			id := createAthlete(athletePayload)["id"].(string)

			w := perform(router, http.MethodDelete, "/atleta/"+id, "")
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())

			Expect(perform(router, http.MethodGet, "/atleta/"+id, "").Code).To(Equal(http.StatusNotFound))
			Expect(perform(router, http.MethodDelete, "/atleta/"+id, "").Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("falhas de persistência", func() {
		It("retorna 500 com a causa fora de produção", func() {
			sqlDB, err := db.DB()
			Expect(err).NotTo(HaveOccurred())
			Expect(sqlDB.Close()).To(Succeed())

			w := perform(router, http.MethodGet, "/atleta/", "")
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["detail"]).To(SatisfyAll(
				HavePrefix("Ocorreu um erro ao inserir os dados no banco"),
				ContainSubstring("database is closed"),
			))
		})

		It("omite a causa quando configurado", func() {
			router = newRouter(db, httphandlers.ErrorOptions{ExposeErrorCauses: false})
			sqlDB, err := db.DB()
			Expect(err).NotTo(HaveOccurred())
			Expect(sqlDB.Close()).To(Succeed())

			w := perform(router, http.MethodGet, "/categoria/", "")
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["detail"]).To(Equal("Ocorreu um erro ao inserir os dados no banco"))
		})
	})
})

var _ = Describe("Router", func() {
	It("responde o health check", func() {
		router := newRouter(sqlitetest.Open(GinkgoT()), httphandlers.ErrorOptions{})

		w := perform(router, http.MethodGet, "/health", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)).To(HaveKeyWithValue("status", "ok"))
	})

	It("serve a documentação swagger", func() {
		router := newRouter(sqlitetest.Open(GinkgoT()), httphandlers.ErrorOptions{})

		w := perform(router, http.MethodGet, "/docs/doc.json", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("/atleta/{id}"))
	})
})
