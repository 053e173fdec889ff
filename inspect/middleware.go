// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inspect

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"
)

func accessLogDecorator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("inspect: -> %s %s", r.Method, r.URL)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := 200
		if ww.Status() != 0 {
			status = ww.Status()
		}

		if status/100 != 2 {
			log.Errorf("inspect: <- %s %d", r.URL, status)
		} else {
			log.Debugf("inspect: <- %s %d", r.URL, status)
		}
	})
}
