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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mappingmodel "github.com/wso2/xml-ingestion-service/internal/mapping/model"
)

var orderRules = []mappingmodel.MappingRule{
	{XmlPath: "Orders/Order/OrderId", TableName: "orders", DatabaseField: "order_id"},
	{XmlPath: "Orders/Order/Amount", TableName: "orders", DatabaseField: "amount"},
	{XmlPath: "Orders/Order/@currency", TableName: "orders", DatabaseField: "currency_code",
		IsAttribute: true},
	{XmlPath: "Orders/Order/Customer/Name", TableName: "customers", DatabaseField: "full_name"},
}

const orderDocument = `<?xml version="1.0"?>
<Orders>
  <Order currency="EUR">
    <OrderId>A-100</OrderId>
    <Amount>12.50</Amount>
    <Customer>
      <Name>Acme GmbH</Name>
    </Customer>
  </Order>
  <Order currency="USD">
    <OrderId>A-101</OrderId>
    <Amount>7.00</Amount>
  </Order>
</Orders>`

func TestTransformExtractsOneRowPerTablePerRecord(t *testing.T) {

	result, err := Transform([]byte(orderDocument), orderRules)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.RecordsProcessed)
	require.Len(t, result.Rows, 3)

	assert.Equal(t, "orders", result.Rows[0].TableName)
	assert.Equal(t, map[string]string{
		"order_id":      "A-100",
		"amount":        "12.50",
		"currency_code": "EUR",
	}, result.Rows[0].Values)

	assert.Equal(t, "customers", result.Rows[1].TableName)
	assert.Equal(t, map[string]string{"full_name": "Acme GmbH"}, result.Rows[1].Values)

	// The second record has no customer block, so it only yields an orders row.
	assert.Equal(t, "orders", result.Rows[2].TableName)
	assert.Equal(t, map[string]string{
		"order_id":      "A-101",
		"amount":        "7.00",
		"currency_code": "USD",
	}, result.Rows[2].Values)
}

func TestTransformIgnoresUnmappedNodes(t *testing.T) {

	doc := `<Orders><Order currency="EUR"><OrderId>A-1</OrderId><Internal>skip</Internal></Order></Orders>`
	result, err := Transform([]byte(doc), orderRules)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, map[string]string{"order_id": "A-1", "currency_code": "EUR"},
		result.Rows[0].Values)
}

func TestTransformAppliesRootAttributesToEveryRecord(t *testing.T) {

	rules := append([]mappingmodel.MappingRule{
		{XmlPath: "Orders/@batch", TableName: "orders", DatabaseField: "batch_id",
			IsAttribute: true},
	}, orderRules...)

	doc := `<Orders batch="B-7">
	  <Order currency="EUR"><OrderId>A-1</OrderId></Order>
	  <Order currency="USD"><OrderId>A-2</OrderId></Order>
	</Orders>`

	result, err := Transform([]byte(doc), rules)
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, map[string]string{
		"batch_id":      "B-7",
		"order_id":      "A-1",
		"currency_code": "EUR",
	}, result.Rows[0].Values)
	assert.Equal(t, map[string]string{
		"batch_id":      "B-7",
		"order_id":      "A-2",
		"currency_code": "USD",
	}, result.Rows[1].Values)
}

func TestTransformRejectsEmptyRuleSet(t *testing.T) {

	_, err := Transform([]byte(orderDocument), nil)
	assert.Error(t, err)
}

func TestTransformRejectsMalformedDocuments(t *testing.T) {

	_, err := Transform([]byte(`<Orders><Order>`), orderRules)
	assert.Error(t, err)
}

func TestTransformRejectsDocumentsWithoutRecords(t *testing.T) {

	_, err := Transform([]byte(`<Orders></Orders>`), orderRules)
	assert.Error(t, err)
}
