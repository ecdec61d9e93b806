// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// CustomHostVariable names the environment variable holding the scheme and
// host prepended to request paths (e.g. https://pages.example.com).
const CustomHostVariable = "GO_API_HOST"

// DefaultServerAddress is used when CustomHostVariable is not set.
const DefaultServerAddress = "https://aws-serverless-go-api.com"

// BasePathVariable names the environment variable holding a path prefix
// (e.g. /examples) that the load balancer forwards and pages do not carry.
const BasePathVariable = "PAGES_BASE_PATH"

type RequestAccessor struct {
	stripBasePath string
}

// StripBasePath removes basePath from the front of every proxied request path.
func (r *RequestAccessor) StripBasePath(basePath string) string {
	if strings.Trim(basePath, "/") == "" {
		r.stripBasePath = ""
		return ""
	}
	r.stripBasePath = "/" + strings.Trim(basePath, "/")
	return r.stripBasePath
}

func (r *RequestAccessor) ProxyEventToHTTPRequest(req events.ALBTargetGroupRequest) (*http.Request, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, fmt.Errorf("Decoding request body: %w", err)
		}
		body = decoded
	}

	path := req.Path
	if len(r.stripBasePath) > 1 {
		path = strings.TrimPrefix(path, r.stripBasePath)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	serverAddress := DefaultServerAddress
	if customAddress, ok := os.LookupEnv(CustomHostVariable); ok {
		serverAddress = customAddress
	}

	target := serverAddress + path
	if query := encodeQuery(req); query != "" {
		target += "?" + query
	}

	httpRequest, err := http.NewRequest(strings.ToUpper(req.HTTPMethod), target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("Converting request %s %s: %w", req.HTTPMethod, req.Path, err)
	}

	for h, v := range req.Headers {
		httpRequest.Header.Add(h, v)
	}
	for h, vs := range req.MultiValueHeaders {
		for _, v := range vs {
			httpRequest.Header.Add(h, v)
		}
	}
	if host := httpRequest.Header.Get("Host"); host != "" {
		httpRequest.Host = host
	}

	return httpRequest, nil
}

// encodeQuery orders parameters by name so the resulting URL is stable.
func encodeQuery(req events.ALBTargetGroupRequest) string {
	values := url.Values{}
	for k, v := range req.QueryStringParameters {
		values.Add(k, v)
	}
	for k, vs := range req.MultiValueQueryStringParameters {
		for _, v := range vs {
			values.Add(k, v)
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		for _, v := range values[k] {
			parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
		}
	}
	return strings.Join(parts, "&")
}
