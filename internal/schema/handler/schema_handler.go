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

	"github.com/wso2/xml-ingestion-service/internal/schema/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type SchemaHandler struct{}

func NewSchemaHandler() *SchemaHandler {

	return &SchemaHandler{}
}

// GetSchemaElements handles GET /schema?interfaceId=N
func (sh *SchemaHandler) GetSchemaElements(w http.ResponseWriter, r *http.Request) {

	interfaceId, err := utils.ParseInt64Query(r, constants.ParamInterfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	schemaService := provider.NewSchemaProvider().GetSchemaService()
	elements, err := schemaService.GetSchemaElements(interfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, elements)
}
