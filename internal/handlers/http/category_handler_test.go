package http_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moogar0880/problems"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	httphandlers "github.com/rafabene/workout-api/internal/handlers/http"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/sqlitetest"
)

var _ = Describe("CategoryHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = newRouter(sqlitetest.Open(GinkgoT()), httphandlers.ErrorOptions{})
	})

	Describe("POST /categoria/", func() {
		It("cria a categoria e depois recusa o mesmo nome com 303", func() {
			w := perform(router, http.MethodPost, "/categoria/", `{"nome": "Scale"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			created := decode(w)
			Expect(uuid.Validate(created["id"].(string))).To(Succeed())
			Expect(created["nome"]).To(Equal("Scale"))

			w = perform(router, http.MethodPost, "/categoria/", `{"nome": "Scale"}`)
			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Content-Type")).To(HavePrefix(problems.ProblemMediaType))
			Expect(w.Header().Get("Location")).To(Equal("/categoria/" + created["id"].(string)))

			problem := decode(w)
			Expect(problem["detail"]).To(Equal("Já existe uma categoria cadastrada com o nome: Scale"))
			Expect(problem["type"]).To(Equal("http://localhost:8000/problems/conflict"))
			Expect(problem["instance"]).To(Equal("/categoria/"))
		})

		It("aceita nome acentuado com até 10 caracteres", func() {
			w := perform(router, http.MethodPost, "/categoria/", `{"nome": "Musculação", "descricao": "Treino de força"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(decode(w)).To(HaveKeyWithValue("descricao", "Treino de força"))
		})

		It("usa 409 quando configurado", func() {
			router = newRouter(sqlitetest.Open(GinkgoT()), httphandlers.ErrorOptions{DuplicateStatus: http.StatusConflict})

			Expect(perform(router, http.MethodPost, "/categoria/", `{"nome": "RX"}`).Code).To(Equal(http.StatusCreated))
			Expect(perform(router, http.MethodPost, "/categoria/", `{"nome": "RX"}`).Code).To(Equal(http.StatusConflict))
		})

		It("traduz a mensagem segundo Accept-Language", func() {
			perform(router, http.MethodPost, "/categoria/", `{"nome": "Scale"}`)

			w := perform(router, http.MethodPost, "/categoria/", `{"nome": "Scale"}`, "Accept-Language", "en-US,en;q=0.9")
			Expect(decode(w)["detail"]).To(Equal("A category named Scale already exists"))
		})

		It("recusa nome ausente com erro por campo", func() {
			w := perform(router, http.MethodPost, "/categoria/", `{"descricao": "sem nome"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			problem := decode(w)
			Expect(problem["errors"]).To(ContainElement(SatisfyAll(
				HaveKeyWithValue("field", "nome"),
				HaveKeyWithValue("tag", "required"),
				HaveKeyWithValue("message", "O campo nome é obrigatório"),
			)))
		})

		It("recusa nome com mais de 10 caracteres", func() {
			w := perform(router, http.MethodPost, "/categoria/", `{"nome": "Muito longo demais"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["errors"]).To(ContainElement(HaveKeyWithValue("tag", "max")))
		})

		It("recusa corpo vazio", func() {
			w := perform(router, http.MethodPost, "/categoria/", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["errors"]).To(ContainElement(HaveKeyWithValue("field", "body")))
		})
	})

	Describe("GET /categoria/:id", func() {
		It("retorna a categoria cadastrada", func() {
			created := decode(perform(router, http.MethodPost, "/categoria/", `{"nome": "Scale", "descricao": "Adaptado"}`))

			w := perform(router, http.MethodGet, "/categoria/"+created["id"].(string), "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(HaveKeyWithValue("descricao", "Adaptado"))
		})

		It("retorna 404 para id inexistente", func() {
			id := uuid.NewString()

			w := perform(router, http.MethodGet, "/categoria/"+id, "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["detail"]).To(Equal("Categoria não encontrada no id: " + id))
		})

		It("retorna 400 para id que não é UUID", func() {
			w := perform(router, http.MethodGet, "/categoria/123", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["errors"]).To(ContainElement(HaveKeyWithValue("tag", "uuid")))
		})
	})

	Describe("GET /categoria/", func() {
		BeforeEach(func() {
			for _, name := range []string{"Scale", "RX", "Master"} {
				Expect(perform(router, http.MethodPost, "/categoria/", `{"nome": "`+name+`"}`).Code).To(Equal(http.StatusCreated))
			}
		})

		It("usa limit 50 e offset 0 por padrão", func() {
			page := decode(perform(router, http.MethodGet, "/categoria/", ""))

			Expect(page["items"]).To(HaveLen(3))
			Expect(page["total"]).To(BeNumerically("==", 3))
			Expect(page["limit"]).To(BeNumerically("==", 50))
			Expect(page["offset"]).To(BeNumerically("==", 0))
		})

		It("pagina em ordem de inserção", func() {
			page := decode(perform(router, http.MethodGet, "/categoria/?limit=1&offset=1", ""))

			Expect(page["items"]).To(ConsistOf(HaveKeyWithValue("nome", "RX")))
			Expect(page["total"]).To(BeNumerically("==", 3))
		})

		It("retorna página vazia quando offset passa do fim", func() {
			page := decode(perform(router, http.MethodGet, "/categoria/?offset=10", ""))
			Expect(page["items"]).To(BeEmpty())
		})

		It("recusa limit fora do intervalo", func() {
			Expect(perform(router, http.MethodGet, "/categoria/?limit=0", "").Code).To(Equal(http.StatusBadRequest))
			Expect(perform(router, http.MethodGet, "/categoria/?limit=101", "").Code).To(Equal(http.StatusBadRequest))
			Expect(perform(router, http.MethodGet, "/categoria/?offset=-1", "").Code).To(Equal(http.StatusBadRequest))
		})
	})
})
