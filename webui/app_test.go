package webui_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mindling-ai/mindling/core/agent"
	"github.com/mindling-ai/mindling/core/state"
	"github.com/mindling-ai/mindling/webui"
)

var _ = Describe("App", func() {
	var app *webui.App

	BeforeEach(func() {
		pool := state.NewConversationPool(func() (*agent.Agent, error) {
			return agent.New()
		})
		app = webui.NewApp(pool)
	})

	createConversation := func() string {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/conversations", nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusCreated))

		body := map[string]string{}
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		Expect(body["id"]).ToNot(BeEmpty())
		return body["id"]
	}

	chat := func(id, message string) (*http.Response, map[string]string) {
		payload, _ := json.Marshal(map[string]string{"message": message})
		req := httptest.NewRequest(http.MethodPost, "/api/conversations/"+id+"/chat", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		Expect(err).ToNot(HaveOccurred())

		body := map[string]string{}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return resp, body
	}

	It("creates a conversation and chats with it", func() {
		id := createConversation()

		resp, body := chat(id, "hello there")
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(body["response"]).To(Equal("Hi! Good to see you 🙂"))
	})

	It("rejects empty messages", func() {
		id := createConversation()
		resp, _ := chat(id, "")
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("404s unknown conversations", func() {
		resp, _ := chat("no-such-id", "hi")
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("serves the state snapshot", func() {
		id := createConversation()
		chat(id, "/status")

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/conversations/"+id+"/state", nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		snapshot := map[string]any{}
		Expect(json.NewDecoder(resp.Body).Decode(&snapshot)).To(Succeed())
		Expect(snapshot["cycle"]).To(BeNumerically("==", 1))
		Expect(snapshot["mood"]).To(Equal("neutral"))
	})

	It("deletes conversations", func() {
		id := createConversation()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/conversations/"+id, nil))
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

		resp, _ = chat(id, "hi")
		Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
	})
})
