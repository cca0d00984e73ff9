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

package service

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/wso2/xml-ingestion-service/internal/catalog/model"
	"github.com/wso2/xml-ingestion-service/internal/catalog/store"
	interfacemodel "github.com/wso2/xml-ingestion-service/internal/interfaces/model"
	interfaceprovider "github.com/wso2/xml-ingestion-service/internal/interfaces/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

// CatalogServiceInterface exposes the relational catalog surface used to pick
// mapping targets. The catalog is scoped to one (client, interface) pair: an
// interface only sees the tables carrying its prefix.
type CatalogServiceInterface interface {
	GetTargetTables(clientId int64, interfaceId int64) ([]model.TargetTable, error)
	GetTargetTable(clientId int64, interfaceId int64, tableName string) (*model.TargetTable, error)
}

// CatalogService is the default implementation of the
// CatalogServiceInterface.
type CatalogService struct{}

// GetCatalogService creates a new instance of CatalogService.
func GetCatalogService() CatalogServiceInterface {

	return &CatalogService{}
}

func (cs *CatalogService) GetTargetTables(clientId int64, interfaceId int64) (
	[]model.TargetTable, error) {

	iface, err := resolveScope(clientId, interfaceId)
	if err != nil {
		return nil, err
	}

	tables, err := store.GetTargetTables(tablePrefix(iface))
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CATALOG_UNAVAILABLE.Code,
			Message:     errors.CATALOG_UNAVAILABLE.Message,
			Description: fmt.Sprintf("No target tables resolvable for interface %d.", interfaceId),
		}, http.StatusNotFound)
	}
	return tables, nil
}

func (cs *CatalogService) GetTargetTable(clientId int64, interfaceId int64, tableName string) (
	*model.TargetTable, error) {

	iface, err := resolveScope(clientId, interfaceId)
	if err != nil {
		return nil, err
	}

	table, err := store.GetTargetTable(tablePrefix(iface), tableName)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:    errors.CATALOG_UNAVAILABLE.Code,
			Message: errors.CATALOG_UNAVAILABLE.Message,
			Description: fmt.Sprintf("Table '%s' is not part of the catalog of interface %d.",
				tableName, interfaceId),
		}, http.StatusNotFound)
	}
	return table, nil
}

// resolveScope resolves the interface and checks it belongs to the claimed
// client.
func resolveScope(clientId int64, interfaceId int64) (*interfacemodel.Interface, error) {

	iface, err := interfaceprovider.NewInterfaceProvider().GetInterfaceService().GetInterface(interfaceId)
	if err != nil {
		return nil, err
	}
	if iface.ClientId != clientId {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:    errors.VALIDATION_ERROR.Code,
			Message: errors.VALIDATION_ERROR.Message,
			Description: fmt.Sprintf("Interface %d does not belong to client %d.", interfaceId,
				clientId),
		}, http.StatusBadRequest)
	}
	return iface, nil
}

// tablePrefix derives the table-name prefix that scopes an interface's
// catalog: the root element when declared, else the interface name.
func tablePrefix(iface *interfacemodel.Interface) string {

	prefix := strings.TrimSpace(iface.RootElement)
	if prefix == "" {
		prefix = strings.TrimSpace(iface.Name)
	}
	return strings.ToLower(prefix)
}
