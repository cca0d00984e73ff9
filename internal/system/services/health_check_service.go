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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/xml-ingestion-service/internal/health_check/handler"
)

type HealthCheckService struct {
	healthCheckHandler *handler.HealthCheckHandler
}

func NewHealthCheckService(mux *http.ServeMux, apiBasePath string) *HealthCheckService {

	instance := &HealthCheckService{
		healthCheckHandler: handler.NewHealthCheckHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *HealthCheckService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/health/liveness", apiBasePath), s.healthCheckHandler.Liveness)
	mux.HandleFunc(fmt.Sprintf("GET %s/health/readiness", apiBasePath), s.healthCheckHandler.Readiness)
}
