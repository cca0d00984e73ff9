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

package integration

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/xml-ingestion-service/internal/catalog/service"
	interfacemodel "github.com/wso2/xml-ingestion-service/internal/interfaces/model"
	interfaceservice "github.com/wso2/xml-ingestion-service/internal/interfaces/service"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

func TestCatalogIsScopedToTheInterfacePrefix(t *testing.T) {

	_, err := TestDB.Exec(`CREATE TABLE IF NOT EXISTS inventory_items (item_code TEXT)`)
	require.NoError(t, err)

	svc := service.GetCatalogService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	tables, err := svc.GetTargetTables(client.Id, iface.Id)
	require.NoError(t, err)

	tableNames := make([]string, 0, len(tables))
	for _, table := range tables {
		tableNames = append(tableNames, table.Name)
	}
	assert.Contains(t, tableNames, "orders")
	assert.NotContains(t, tableNames, "inventory_items")
	assert.NotContains(t, tableNames, "clients")
	assert.NotContains(t, tableNames, "processed_files")
}

func TestCatalogUnresolvableForForeignPrefix(t *testing.T) {

	client := createTestClient(t)
	iface, err := interfaceservice.GetInterfaceService().AddInterface(interfacemodel.Interface{
		ClientId:    client.Id,
		Name:        "interface-" + uuid.NewString(),
		RootElement: "Shipments",
	})
	require.NoError(t, err)

	_, err = service.GetCatalogService().GetTargetTables(client.Id, iface.Id)
	requireClientError(t, err, errors.CATALOG_UNAVAILABLE.Code, http.StatusNotFound)
}

func TestCatalogRejectsScopeMismatch(t *testing.T) {

	client := createTestClient(t)
	other := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	_, err := service.GetCatalogService().GetTargetTables(other.Id, iface.Id)
	requireClientError(t, err, errors.VALIDATION_ERROR.Code, http.StatusBadRequest)
}

func TestCatalogSingleTableLookupHonorsScope(t *testing.T) {

	svc := service.GetCatalogService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	table, err := svc.GetTargetTable(client.Id, iface.Id, "orders")
	require.NoError(t, err)
	assert.Equal(t, "orders", table.Name)
	assert.NotEmpty(t, table.Columns)

	// A real table outside the interface's prefix is not part of its catalog.
	_, err = svc.GetTargetTable(client.Id, iface.Id, "clients")
	requireClientError(t, err, errors.CATALOG_UNAVAILABLE.Code, http.StatusNotFound)
}
