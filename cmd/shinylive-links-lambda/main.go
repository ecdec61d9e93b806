// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"net/http"
	"os"

	"carvel.dev/shinylive-links/pkg/cmd"
	"carvel.dev/shinylive-links/pkg/cmd/ui"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// PagesDir is where the deployment bundle places generated pages.
const PagesDir = "/var/task/shinylive-pages"

type HandlerFuncAdapter struct {
	RequestAccessor
	handler http.Handler
}

func New(handler http.Handler) *HandlerFuncAdapter {
	return &HandlerFuncAdapter{
		handler: handler,
	}
}

func (h *HandlerFuncAdapter) Proxy(event events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	req, err := h.ProxyEventToHTTPRequest(event)
	if err != nil {
		return events.ALBTargetGroupResponse{StatusCode: http.StatusMisdirectedRequest}, fmt.Errorf("Could not convert event to request: %w", err)
	}

	w := NewProxyResponseWriter()
	h.handler.ServeHTTP(w, req)

	return w.ProxyResponse(), nil
}

func main() {
	serveOpts := cmd.NewServeOptions()
	serveOpts.Dir = PagesDir
	serveOpts.RedirectToHTTPS = true
	adapter := New(serveOpts.Server(ui.NewTTY(false)).Mux())
	adapter.StripBasePath(os.Getenv(BasePathVariable))
	lambda.Start(adapter.Proxy)
}
