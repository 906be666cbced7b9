package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/middlewares"
)

func newRequest(method, target string, body any) *http.Request {
	var buf []byte
	switch v := body.(type) {
	case nil:
	case string:
		buf = []byte(v)
	default:
		buf, _ = json.Marshal(v)
	}
	return httptest.NewRequest(method, target, bytes.NewReader(buf))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request, user *identity.User) *http.Request {
	return r.WithContext(middlewares.WithUser(r.Context(), user))
}

func decodeError(rr *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.NewDecoder(rr.Body).Decode(&resp)
	return resp
}
