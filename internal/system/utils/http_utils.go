/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	customerrors "github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error.
// Client errors keep their code and description; server errors are logged
// and collapsed into an opaque 500.
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	w.Header().Set("Content-Type", "application/json")
	if ok := errors.As(err, &clientError); ok {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			Code:        clientError.ErrorMessage.Code,
			Message:     clientError.ErrorMessage.Message,
			Description: clientError.ErrorMessage.Description,
		})
		return
	}

	logger := log.GetLogger()
	logger.Error(err.Error())
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteJSONResponse writes the payload with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ParseInt64Query reads a required int64 query parameter. A missing or
// malformed value yields a validation client error naming the parameter.
func ParseInt64Query(r *http.Request, name string) (int64, error) {

	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, customerrors.NewClientError(customerrors.ErrorMessage{
			Code:        customerrors.VALIDATION_ERROR.Code,
			Message:     customerrors.VALIDATION_ERROR.Message,
			Description: "Missing required query parameter: " + name,
		}, http.StatusBadRequest)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, customerrors.NewClientError(customerrors.ErrorMessage{
			Code:        customerrors.VALIDATION_ERROR.Code,
			Message:     customerrors.VALIDATION_ERROR.Message,
			Description: "Query parameter must be an integer: " + name,
		}, http.StatusBadRequest)
	}
	return v, nil
}

// ParseOptionalInt64Query reads an optional int64 query parameter, returning
// zero when it is absent.
func ParseOptionalInt64Query(r *http.Request, name string) (int64, error) {

	if r.URL.Query().Get(name) == "" {
		return 0, nil
	}
	return ParseInt64Query(r, name)
}

// PathSuffixInt64 extracts the trailing path segment as an int64 id.
func PathSuffixInt64(r *http.Request) (int64, error) {

	parts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
	raw := parts[len(parts)-1]
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, customerrors.NewClientError(customerrors.ErrorMessage{
			Code:        customerrors.VALIDATION_ERROR.Code,
			Message:     customerrors.VALIDATION_ERROR.Message,
			Description: "Path segment must be an integer id: " + raw,
		}, http.StatusBadRequest)
	}
	return v, nil
}
