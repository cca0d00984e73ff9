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

	"github.com/wso2/xml-ingestion-service/internal/mapping/handler"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
)

type MappingService struct {
	mappingHandler *handler.MappingHandler
}

func NewMappingService(mux *http.ServeMux, apiBasePath string) *MappingService {

	instance := &MappingService{
		mappingHandler: handler.NewMappingHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *MappingService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/mapping-rules", apiBasePath),
		secure(constants.OpReadConfiguration, s.mappingHandler.GetMappingRules))
	mux.HandleFunc(fmt.Sprintf("POST %s/mapping-rules", apiBasePath),
		secure(constants.OpWriteMappingConfig, s.mappingHandler.CreateMappingRule))
	mux.HandleFunc(fmt.Sprintf("PUT %s/mapping-rules/", apiBasePath),
		secure(constants.OpWriteMappingConfig, s.mappingHandler.UpdateMappingRule))
	mux.HandleFunc(fmt.Sprintf("DELETE %s/mapping-rules/", apiBasePath),
		secure(constants.OpWriteMappingConfig, s.mappingHandler.DeleteMappingRule))

	mux.HandleFunc(fmt.Sprintf("GET %s/mapping-configuration", apiBasePath),
		secure(constants.OpReadConfiguration, s.mappingHandler.GetMappingSurface))
	mux.HandleFunc(fmt.Sprintf("PUT %s/mapping-configuration", apiBasePath),
		secure(constants.OpWriteMappingConfig, s.mappingHandler.ReplaceMappingRules))
	mux.HandleFunc(fmt.Sprintf("POST %s/mapping-configuration/bind", apiBasePath),
		secure(constants.OpWriteMappingConfig, s.mappingHandler.BindMapping))
}
