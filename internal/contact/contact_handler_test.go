package contact_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-smbops/internal/contact"
	contacterrors "go-smbops/internal/contact/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeContactService struct {
	CreateFn         func(ctx context.Context, callerID string, req contact.ContactRequest) (contact.ContactResponse, error)
	ListFn           func(ctx context.Context, q contact.ListContactsQuery) ([]contact.ContactResponse, error)
	UpdateFn         func(ctx context.Context, id string, req contact.ContactRequest) (contact.ContactResponse, error)
	DeleteFn         func(ctx context.Context, id string) error
	AddInteractionFn func(ctx context.Context, id, callerID string, req contact.InteractionRequest) error
	ImportFn         func(ctx context.Context, callerID string, data []byte) (contact.ImportResult, error)
	ExportFn         func(ctx context.Context, w io.Writer) error
}

func (f *fakeContactService) Create(ctx context.Context, callerID string, req contact.ContactRequest) (contact.ContactResponse, error) {
	return f.CreateFn(ctx, callerID, req)
}

func (f *fakeContactService) List(ctx context.Context, q contact.ListContactsQuery) ([]contact.ContactResponse, error) {
	return f.ListFn(ctx, q)
}

func (f *fakeContactService) Update(ctx context.Context, id string, req contact.ContactRequest) (contact.ContactResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func (f *fakeContactService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func (f *fakeContactService) AddInteraction(ctx context.Context, id, callerID string, req contact.InteractionRequest) error {
	return f.AddInteractionFn(ctx, id, callerID, req)
}

func (f *fakeContactService) Import(ctx context.Context, callerID string, data []byte) (contact.ImportResult, error) {
	return f.ImportFn(ctx, callerID, data)
}

func (f *fakeContactService) Export(ctx context.Context, w io.Writer) error {
	return f.ExportFn(ctx, w)
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
	t.Run("rejects unknown status", func(t *testing.T) {
		c, w := newContext(jsonRequest(http.MethodPost, "/crm/contacts", `{"name":"Ada","status":"Lead"}`))

		contact.NewHandler(&fakeContactService{}, zap.NewNop()).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeContactService{
			CreateFn: func(ctx context.Context, callerID string, req contact.ContactRequest) (contact.ContactResponse, error) {
				return contact.ContactResponse{ID: "c-1", Name: req.Name, Status: "Client"}, nil
			},
		}
		c, w := newContext(jsonRequest(http.MethodPost, "/crm/contacts", `{"name":"Ada","status":"Client"}`))

		contact.NewHandler(svc, zap.NewNop()).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestHandler_AddInteraction(t *testing.T) {
	t.Run("rejects unknown type", func(t *testing.T) {
		c, w := newContext(jsonRequest(http.MethodPost, "/crm/contacts/x/interactions", `{"type":"sms","content":"hi"}`))

		contact.NewHandler(&fakeContactService{}, zap.NewNop()).AddInteraction(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("contact absent", func(t *testing.T) {
		svc := &fakeContactService{
			AddInteractionFn: func(ctx context.Context, id, callerID string, req contact.InteractionRequest) error {
				assert.Equal(t, "c-1", id)
				assert.Equal(t, "u-1", callerID)
				return contacterrors.ErrContactNotFound
			},
		}
		c, w := newContext(jsonRequest(http.MethodPost, "/crm/contacts/c-1/interactions", `{"type":"note","content":"hi"}`))
		c.Params = gin.Params{{Key: "id", Value: "c-1"}}

		contact.NewHandler(svc, zap.NewNop()).AddInteraction(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Import(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, _ := mw.CreateFormFile("file", "contacts.csv")
		fmt.Fprint(part, "name\nAda\n\nBob\n")
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/crm/contacts/import", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		svc := &fakeContactService{
			ImportFn: func(ctx context.Context, callerID string, data []byte) (contact.ImportResult, error) {
				assert.Equal(t, "name\nAda\n\nBob\n", string(data))
				return contact.ImportResult{Inserted: 2}, nil
			},
		}
		c, w := newContext(req)

		contact.NewHandler(svc, zap.NewNop()).Import(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"inserted":2`)
	})

	t.Run("missing file", func(t *testing.T) {
		c, w := newContext(httptest.NewRequest(http.MethodPost, "/crm/contacts/import", nil))

		contact.NewHandler(&fakeContactService{}, zap.NewNop()).Import(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Export(t *testing.T) {
	svc := &fakeContactService{
		ExportFn: func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "name,email,phone,company,status,notes\n")
			return err
		},
	}
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/crm/contacts/export", nil))

	contact.NewHandler(svc, zap.NewNop()).Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=contacts.csv", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "name,email,phone,company,status,notes\n", w.Body.String())
}
