// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// ProxyResponseWriter collects a handler's response for an ALB target group.
type ProxyResponseWriter struct {
	headers http.Header
	body    bytes.Buffer
	status  int
}

var _ http.ResponseWriter = &ProxyResponseWriter{}

func NewProxyResponseWriter() *ProxyResponseWriter {
	return &ProxyResponseWriter{headers: http.Header{}}
}

func (w *ProxyResponseWriter) Header() http.Header { return w.headers }

func (w *ProxyResponseWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(data)
}

func (w *ProxyResponseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *ProxyResponseWriter) ProxyResponse() events.ALBTargetGroupResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	resp := events.ALBTargetGroupResponse{
		StatusCode:        status,
		StatusDescription: http.StatusText(status),
		MultiValueHeaders: map[string][]string(w.headers),
	}

	body := w.body.Bytes()
	if isText(w.headers.Get("Content-Type")) && utf8.Valid(body) {
		resp.Body = string(body)
	} else {
		resp.Body = base64.StdEncoding.EncodeToString(body)
		resp.IsBase64Encoded = true
	}
	return resp
}

func isText(contentType string) bool {
	if contentType == "" {
		return true
	}
	for _, prefix := range []string{"text/", "application/json", "application/javascript"} {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}
