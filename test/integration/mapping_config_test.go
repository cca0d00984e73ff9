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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/xml-ingestion-service/internal/mapping/model"
	"github.com/wso2/xml-ingestion-service/internal/mapping/service"
	"github.com/wso2/xml-ingestion-service/internal/system/database/lock"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

func TestCreateMappingRuleBackfillsFromCatalog(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	created, err := svc.CreateMappingRule(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/Amount",
		TableName:     "orders",
		DatabaseField: "amount",
	})
	require.NoError(t, err)

	assert.Equal(t, client.Id, created.ClientId)
	assert.Equal(t, "Amount", created.XsdElement)
	assert.Equal(t, "numeric", created.DataType)
	assert.False(t, created.IsAttribute)

	attrRule, err := svc.CreateMappingRule(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/@currency",
		TableName:     "orders",
		DatabaseField: "currency_code",
	})
	require.NoError(t, err)
	assert.True(t, attrRule.IsAttribute)
	assert.Equal(t, "currency", attrRule.XsdElement)
}

func TestCreateMappingRuleRejectsUnknownTargets(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	_, err := svc.CreateMappingRule(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/OrderNumber",
		TableName:     "no_such_table",
		DatabaseField: "order_number",
	})
	requireClientError(t, err, errors.INVALID_CONFIGURATION.Code, http.StatusUnprocessableEntity)

	_, err = svc.CreateMappingRule(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/OrderNumber",
		TableName:     "orders",
		DatabaseField: "no_such_column",
	})
	requireClientError(t, err, errors.INVALID_CONFIGURATION.Code, http.StatusUnprocessableEntity)
}

func TestCreateMappingRuleValidatesAgainstSchema(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "orders.xsd")

	_, err := svc.CreateMappingRule(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/NotInSchema",
		TableName:     "orders",
		DatabaseField: "order_number",
	})
	requireClientError(t, err, errors.INVALID_CONFIGURATION.Code, http.StatusUnprocessableEntity)

	_, err = svc.CreateMappingRule(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/OrderNumber",
		TableName:     "orders",
		DatabaseField: "order_number",
	})
	require.NoError(t, err)
}

func TestDuplicateBindingRejected(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	rule := model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/OrderNumber",
		TableName:     "orders",
		DatabaseField: "order_number",
	}
	_, err := svc.CreateMappingRule(rule)
	require.NoError(t, err)

	rule.DatabaseField = "customer_name"
	_, err = svc.CreateMappingRule(rule)
	requireClientError(t, err, errors.DUPLICATE_BINDING.Code, http.StatusConflict)
}

func TestReplaceMappingRulesSwapsConfiguration(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	initial, err := svc.ReplaceMappingRules(iface.Id, []model.MappingRule{
		{XmlPath: "Orders/Order/OrderNumber", TableName: "orders", DatabaseField: "order_number"},
		{XmlPath: "Orders/Order/CustomerName", TableName: "orders", DatabaseField: "customer_name"},
	})
	require.NoError(t, err)
	require.Len(t, initial, 2)

	replaced, err := svc.ReplaceMappingRules(iface.Id, []model.MappingRule{
		{XmlPath: "Orders/Order/Amount", TableName: "orders", DatabaseField: "amount"},
	})
	require.NoError(t, err)
	require.Len(t, replaced, 1)

	current, err := svc.GetMappingRules(iface.Id)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "Orders/Order/Amount", current[0].XmlPath)
}

func TestReplaceMappingRulesIsAtomic(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	_, err := svc.ReplaceMappingRules(iface.Id, []model.MappingRule{
		{XmlPath: "Orders/Order/OrderNumber", TableName: "orders", DatabaseField: "order_number"},
	})
	require.NoError(t, err)

	// One bad rule rejects the whole set.
	_, err = svc.ReplaceMappingRules(iface.Id, []model.MappingRule{
		{XmlPath: "Orders/Order/Amount", TableName: "orders", DatabaseField: "amount"},
		{XmlPath: "Orders/Order/CustomerName", TableName: "orders", DatabaseField: "no_such_column"},
	})
	requireClientError(t, err, errors.INVALID_CONFIGURATION.Code, http.StatusUnprocessableEntity)

	current, err := svc.GetMappingRules(iface.Id)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "Orders/Order/OrderNumber", current[0].XmlPath)
}

func TestReplaceMappingRulesRejectsDuplicatePaths(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	_, err := svc.ReplaceMappingRules(iface.Id, []model.MappingRule{
		{XmlPath: "Orders/Order/OrderNumber", TableName: "orders", DatabaseField: "order_number"},
		{XmlPath: "Orders/Order/OrderNumber", TableName: "orders", DatabaseField: "customer_name"},
	})
	requireClientError(t, err, errors.INVALID_CONFIGURATION.Code, http.StatusUnprocessableEntity)
}

func TestBindMappingUpsertsByPath(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	created, err := svc.BindMapping(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/CustomerName",
		TableName:     "orders",
		DatabaseField: "customer_name",
	})
	require.NoError(t, err)

	rebound, err := svc.BindMapping(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/CustomerName",
		TableName:     "orders",
		DatabaseField: "order_number",
	})
	require.NoError(t, err)
	assert.Equal(t, created.Id, rebound.Id)
	assert.Equal(t, "order_number", rebound.DatabaseField)

	current, err := svc.GetMappingRules(iface.Id)
	require.NoError(t, err)
	assert.Len(t, current, 1)
}

func TestMappingSurfaceAssemblesAllThreeViews(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "orders.xsd")

	_, err := svc.CreateMappingRule(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/OrderNumber",
		TableName:     "orders",
		DatabaseField: "order_number",
	})
	require.NoError(t, err)

	surface, err := svc.GetMappingSurface(iface.Id)
	require.NoError(t, err)

	assert.Equal(t, iface.Id, surface.InterfaceId)
	assert.NotEmpty(t, surface.SchemaElements)
	require.Len(t, surface.Rules, 1)

	tableNames := make([]string, 0, len(surface.TargetTables))
	for _, table := range surface.TargetTables {
		tableNames = append(tableNames, table.Name)
	}
	assert.Contains(t, tableNames, "orders")
	assert.NotContains(t, tableNames, "mapping_rules")
}

func TestConcurrentMappingWritesConflictPerInterface(t *testing.T) {

	svc := service.GetMappingService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	_, err := svc.ReplaceMappingRules(iface.Id, []model.MappingRule{
		{XmlPath: "Orders/Order/OrderNumber", TableName: "orders", DatabaseField: "order_number"},
	})
	require.NoError(t, err)

	// A second writer holds the interface's advisory lock for the duration
	// of its transaction.
	key, err := lock.GenerateKey(iface.Id)
	require.NoError(t, err)
	holder, err := TestDB.Begin()
	require.NoError(t, err)
	var held bool
	require.NoError(t, holder.QueryRow("SELECT pg_try_advisory_xact_lock($1)", key).Scan(&held))
	require.True(t, held)

	_, err = svc.ReplaceMappingRules(iface.Id, []model.MappingRule{
		{XmlPath: "Orders/Order/Amount", TableName: "orders", DatabaseField: "amount"},
	})
	requireClientError(t, err, errors.CONFIG_REPLACE_CONFLICT.Code, http.StatusConflict)

	// Point edits contend on the same lock as the wholesale replace.
	_, err = svc.CreateMappingRule(model.MappingRule{
		InterfaceId:   iface.Id,
		XmlPath:       "Orders/Order/CustomerName",
		TableName:     "orders",
		DatabaseField: "customer_name",
	})
	requireClientError(t, err, errors.CONFIG_REPLACE_CONFLICT.Code, http.StatusConflict)

	// The losing saves left the configuration untouched.
	current, err := svc.GetMappingRules(iface.Id)
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "Orders/Order/OrderNumber", current[0].XmlPath)

	// Once the holder releases, the replace goes through.
	require.NoError(t, holder.Rollback())

	replaced, err := svc.ReplaceMappingRules(iface.Id, []model.MappingRule{
		{XmlPath: "Orders/Order/Amount", TableName: "orders", DatabaseField: "amount"},
	})
	require.NoError(t, err)
	require.Len(t, replaced, 1)
	assert.Equal(t, "Orders/Order/Amount", replaced[0].XmlPath)
}

func TestMappingRulesRequireExistingInterface(t *testing.T) {

	_, err := service.GetMappingService().GetMappingRules(99999999)
	requireClientError(t, err, errors.INTERFACE_NOT_FOUND.Code, http.StatusNotFound)
}
