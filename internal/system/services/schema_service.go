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

	cataloghandler "github.com/wso2/xml-ingestion-service/internal/catalog/handler"
	schemahandler "github.com/wso2/xml-ingestion-service/internal/schema/handler"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
)

// SchemaService groups the two read-only introspection surfaces: the XSD
// element listing and the relational target catalog.
type SchemaService struct {
	schemaHandler  *schemahandler.SchemaHandler
	catalogHandler *cataloghandler.CatalogHandler
}

func NewSchemaService(mux *http.ServeMux, apiBasePath string) *SchemaService {

	instance := &SchemaService{
		schemaHandler:  schemahandler.NewSchemaHandler(),
		catalogHandler: cataloghandler.NewCatalogHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *SchemaService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("GET %s/schema", apiBasePath),
		secure(constants.OpReadConfiguration, s.schemaHandler.GetSchemaElements))
	mux.HandleFunc(fmt.Sprintf("GET %s/catalog/tables", apiBasePath),
		secure(constants.OpReadConfiguration, s.catalogHandler.GetTargetTables))
	mux.HandleFunc(fmt.Sprintf("GET %s/catalog/tables/", apiBasePath),
		secure(constants.OpReadConfiguration, s.catalogHandler.GetTargetTable))
}
