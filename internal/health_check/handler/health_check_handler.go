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

package handler

import (
	"net/http"

	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type HealthCheckHandler struct{}

func NewHealthCheckHandler() *HealthCheckHandler {

	return &HealthCheckHandler{}
}

// Liveness handles GET /health/liveness
func (hh *HealthCheckHandler) Liveness(w http.ResponseWriter, r *http.Request) {

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "UP"})
}

// Readiness handles GET /health/readiness. The service is ready once the
// database answers a trivial query.
func (hh *HealthCheckHandler) Readiness(w http.ResponseWriter, r *http.Request) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err == nil {
		defer dbClient.Close()
		_, err = dbClient.ExecuteQuery("SELECT 1")
	}
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": "DOWN",
			"reason": "database unreachable",
		})
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "UP"})
}
