package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grachmannico95/verbs-service/internal/config"
	"github.com/grachmannico95/verbs-service/internal/handler"
	"github.com/grachmannico95/verbs-service/internal/service"
	"github.com/grachmannico95/verbs-service/internal/storage"
	"github.com/grachmannico95/verbs-service/internal/validation"
	"github.com/grachmannico95/verbs-service/mocks"
	"github.com/grachmannico95/verbs-service/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestNew_UsesInjectedValidator(t *testing.T) {
	log := logger.NewNop()
	v := validation.New()
	store := storage.NewMemoryStore(v)
	verbService := service.NewVerbService(store, store, store, mocks.NewMockAuditPublisher(t), log)

	srv := New(&config.Config{}, log, v,
		handler.NewVerbHandler(verbService, log, 1<<20),
		handler.NewHealthHandler(nil))

	assert.Same(t, v, srv.Handler().Validator)

	req := httptest.NewRequest(http.MethodPost, "/verbs", strings.NewReader(`{"translation":"ям"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"name"`)
}
