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
	"strings"

	"github.com/wso2/xml-ingestion-service/internal/catalog/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {

	return &CatalogHandler{}
}

// GetTargetTables handles GET /catalog/tables?clientId&interfaceId
func (ch *CatalogHandler) GetTargetTables(w http.ResponseWriter, r *http.Request) {

	clientId, err := utils.ParseInt64Query(r, constants.ParamClientId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	interfaceId, err := utils.ParseInt64Query(r, constants.ParamInterfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	catalogService := provider.NewCatalogProvider().GetCatalogService()
	tables, err := catalogService.GetTargetTables(clientId, interfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, tables)
}

// GetTargetTable handles GET /catalog/tables/:name?clientId&interfaceId
func (ch *CatalogHandler) GetTargetTable(w http.ResponseWriter, r *http.Request) {

	parts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
	tableName := parts[len(parts)-1]

	clientId, err := utils.ParseInt64Query(r, constants.ParamClientId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	interfaceId, err := utils.ParseInt64Query(r, constants.ParamInterfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	catalogService := provider.NewCatalogProvider().GetCatalogService()
	table, err := catalogService.GetTargetTable(clientId, interfaceId, tableName)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, table)
}
