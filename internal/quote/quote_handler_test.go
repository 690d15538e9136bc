package quote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-smbops/internal/quote"
	quoteerrors "go-smbops/internal/quote/errors"
	quoteMock "go-smbops/internal/quote/mock"
	"go-smbops/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeQuoteService struct {
	CreateFn    func(ctx context.Context, callerID string, req quote.QuoteRequest) (quote.QuoteResponse, error)
	ListFn      func(ctx context.Context, callerID string, q quote.ListQuotesQuery) ([]quote.QuoteResponse, error)
	GetFn       func(ctx context.Context, id, callerID string) (quote.QuoteResponse, error)
	UpdateFn    func(ctx context.Context, id, callerID string, req quote.QuoteRequest) (quote.QuoteResponse, error)
	DeleteFn    func(ctx context.Context, id, callerID string) error
	GetPublicFn func(ctx context.Context, token string) (quote.QuoteResponse, error)
}

func (f *fakeQuoteService) Create(ctx context.Context, callerID string, req quote.QuoteRequest) (quote.QuoteResponse, error) {
	return f.CreateFn(ctx, callerID, req)
}

func (f *fakeQuoteService) List(ctx context.Context, callerID string, q quote.ListQuotesQuery) ([]quote.QuoteResponse, error) {
	return f.ListFn(ctx, callerID, q)
}

func (f *fakeQuoteService) Get(ctx context.Context, id, callerID string) (quote.QuoteResponse, error) {
	return f.GetFn(ctx, id, callerID)
}

func (f *fakeQuoteService) Update(ctx context.Context, id, callerID string, req quote.QuoteRequest) (quote.QuoteResponse, error) {
	return f.UpdateFn(ctx, id, callerID, req)
}

func (f *fakeQuoteService) Delete(ctx context.Context, id, callerID string) error {
	return f.DeleteFn(ctx, id, callerID)
}

func (f *fakeQuoteService) GetPublic(ctx context.Context, token string) (quote.QuoteResponse, error) {
	return f.GetPublicFn(ctx, token)
}

func newContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("user_id", "u-1")
	return c, w
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Create(t *testing.T) {
	t.Run("negative price is rejected", func(t *testing.T) {
		c, w := newContext(jsonRequest(http.MethodPost, "/quotes", `{"items":[{"name":"A","unit_price":-1}]}`))

		quote.NewHandler(&fakeQuoteService{}, zap.NewNop()).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing items", func(t *testing.T) {
		c, w := newContext(jsonRequest(http.MethodPost, "/quotes", `{"company_name":"Acme"}`))

		quote.NewHandler(&fakeQuoteService{}, zap.NewNop()).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("quota exhausted", func(t *testing.T) {
		svc := &fakeQuoteService{
			CreateFn: func(ctx context.Context, callerID string, req quote.QuoteRequest) (quote.QuoteResponse, error) {
				return quote.QuoteResponse{}, quoteerrors.QuotaExceeded(5)
			},
		}
		c, w := newContext(jsonRequest(http.MethodPost, "/quotes", `{"items":[{"name":"A","unit_price":10}]}`))

		quote.NewHandler(svc, zap.NewNop()).Create(c)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Contains(t, w.Body.String(), "Free tier limit reached: max 5 quotes this month")
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeQuoteService{
			CreateFn: func(ctx context.Context, callerID string, req quote.QuoteRequest) (quote.QuoteResponse, error) {
				assert.Equal(t, "u-1", callerID)
				assert.Len(t, req.Items, 1)
				return quote.QuoteResponse{ID: "q-1", Total: 240}, nil
			},
		}
		c, w := newContext(jsonRequest(http.MethodPost, "/quotes", `{"items":[{"name":"A","unit_price":100,"quantity":2,"tax_rate":20}]}`))

		quote.NewHandler(svc, zap.NewNop()).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestHandler_List(t *testing.T) {
	svc := &fakeQuoteService{
		ListFn: func(ctx context.Context, callerID string, q quote.ListQuotesQuery) ([]quote.QuoteResponse, error) {
			assert.Equal(t, "u-1", callerID)
			assert.Equal(t, "Sent", q.Status)
			return []quote.QuoteResponse{}, nil
		},
	}
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/quotes?status=Sent", nil))

	quote.NewHandler(svc, zap.NewNop()).List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Update_NotFound(t *testing.T) {
	svc := &fakeQuoteService{
		UpdateFn: func(ctx context.Context, id, callerID string, req quote.QuoteRequest) (quote.QuoteResponse, error) {
			return quote.QuoteResponse{}, quoteerrors.ErrQuoteNotFound
		},
	}
	c, w := newContext(jsonRequest(http.MethodPut, "/quotes/q-1", `{"items":[]}`))
	c.Params = gin.Params{{Key: "id", Value: "q-1"}}

	quote.NewHandler(svc, zap.NewNop()).Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Public(t *testing.T) {
	t.Run("escapes stored text", func(t *testing.T) {
		name := `<script>alert(1)</script>`
		svc := &fakeQuoteService{
			GetPublicFn: func(ctx context.Context, token string) (quote.QuoteResponse, error) {
				assert.Equal(t, "tok", token)
				return quote.QuoteResponse{
					CompanyName: &name,
					Status:      "Sent",
					Currency:    "USD",
					Items:       []quote.Item{{Name: "<b>Design</b>", UnitPrice: 100, Quantity: 2, TaxRate: 20}},
					Total:       240,
				}, nil
			},
		}
		c, w := newContext(httptest.NewRequest(http.MethodGet, "/public/quote/tok", nil))
		c.Params = gin.Params{{Key: "token", Value: "tok"}}

		quote.NewHandler(svc, zap.NewNop()).Public(c)

		body := w.Body.String()
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, "&lt;script&gt;")
		assert.Contains(t, body, "&lt;b&gt;Design&lt;/b&gt;")
		assert.Contains(t, body, "Total: 240.00 USD")
		assert.Contains(t, body, "Status: Sent")
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := &fakeQuoteService{
			GetPublicFn: func(ctx context.Context, token string) (quote.QuoteResponse, error) {
				return quote.QuoteResponse{}, quoteerrors.ErrPublicQuoteNotFound
			},
		}
		c, w := newContext(httptest.NewRequest(http.MethodGet, "/public/quote/x", nil))
		c.Params = gin.Params{{Key: "token", Value: "x"}}

		quote.NewHandler(svc, zap.NewNop()).Public(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Not found", w.Body.String())
	})
}

func TestHandler_Create_KeepsRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := quoteMock.NewMockService(ctrl)

	core, logs := observer.New(zap.InfoLevel)
	requestLogger := zap.New(core).With(zap.String("request_id", "req-1"))

	req := jsonRequest(http.MethodPost, "/quotes", `{"items":[{"name":"A","unit_price":10}]}`)
	req = req.WithContext(contextutil.WithLogger(req.Context(), requestLogger))
	c, w := newContext(req)

	svc.EXPECT().
		Create(gomock.Any(), "u-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, callerID string, req quote.QuoteRequest) (quote.QuoteResponse, error) {
			contextutil.GetLogger(ctx, nil).Info("quote created")
			return quote.QuoteResponse{ID: "q-1", Total: 10}, nil
		})

	quote.NewHandler(svc, zap.NewNop()).Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	entries := logs.FilterMessage("quote created").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	}
}
