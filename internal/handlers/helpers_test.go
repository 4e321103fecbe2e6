package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// withSessionID attaches the chi route parameter the handlers read.
func withSessionID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newSessionRequest(method, target string, id uuid.UUID, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return withSessionID(req, id.String())
}

func newMultipartRequest(target string, id uuid.UUID, field string, data []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		part, _ := mw.CreateFormFile(field, "upload.png")
		_, _ = part.Write(data)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withSessionID(req, id.String())
}
