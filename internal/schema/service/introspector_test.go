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
	"github.com/wso2/xml-ingestion-service/internal/schema/model"
)

const orderSchema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Orders">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="Order" maxOccurs="unbounded">
          <xs:complexType>
            <xs:sequence>
              <xs:element name="OrderId" type="xs:string"/>
              <xs:element name="Amount" type="xs:decimal" minOccurs="0"/>
            </xs:sequence>
            <xs:attribute name="currency" type="xs:string" use="required"/>
          </xs:complexType>
        </xs:element>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func TestParseSchemaFlattensElementsInDocumentOrder(t *testing.T) {

	elements, err := ParseSchema([]byte(orderSchema))
	require.NoError(t, err)

	paths := make([]string, len(elements))
	for i, el := range elements {
		paths[i] = el.Path
	}
	assert.Equal(t, []string{
		"Orders",
		"Orders/Order",
		"Orders/Order/@currency",
		"Orders/Order/OrderId",
		"Orders/Order/Amount",
	}, paths)
}

func TestParseSchemaElementProperties(t *testing.T) {

	elements, err := ParseSchema([]byte(orderSchema))
	require.NoError(t, err)

	byPath := map[string]model.SchemaElement{}
	for _, el := range elements {
		byPath[el.Path] = el
	}

	order := byPath["Orders/Order"]
	assert.True(t, order.Repeats)
	assert.True(t, order.Required)
	assert.False(t, order.IsAttribute)

	currency := byPath["Orders/Order/@currency"]
	assert.True(t, currency.IsAttribute)
	assert.True(t, currency.Required)
	assert.Equal(t, "string", currency.Type)

	amount := byPath["Orders/Order/Amount"]
	assert.False(t, amount.Required)
	assert.Equal(t, "decimal", amount.Type)
}

func TestParseSchemaResolvesNamedComplexTypes(t *testing.T) {

	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Shipment" type="ShipmentType"/>
  <xs:complexType name="ShipmentType">
    <xs:sequence>
      <xs:element name="TrackingNo" type="xs:string"/>
    </xs:sequence>
    <xs:attribute name="carrier" type="xs:string"/>
  </xs:complexType>
</xs:schema>`

	elements, err := ParseSchema([]byte(doc))
	require.NoError(t, err)

	paths := make([]string, len(elements))
	for i, el := range elements {
		paths[i] = el.Path
	}
	assert.Equal(t, []string{"Shipment", "Shipment/@carrier", "Shipment/TrackingNo"}, paths)
}

func TestParseSchemaStopsOnRecursiveTypes(t *testing.T) {

	doc := `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="Node" type="NodeType"/>
  <xs:complexType name="NodeType">
    <xs:sequence>
      <xs:element name="Child" type="NodeType" minOccurs="0"/>
      <xs:element name="Label" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

	elements, err := ParseSchema([]byte(doc))
	require.NoError(t, err)

	// The recursive branch expands once and stops instead of looping.
	paths := make([]string, len(elements))
	for i, el := range elements {
		paths[i] = el.Path
	}
	assert.Contains(t, paths, "Node/Child")
	assert.Contains(t, paths, "Node/Label")
	assert.NotContains(t, paths, "Node/Child/Child")
}

func TestParseSchemaRejectsInvalidDocuments(t *testing.T) {

	tests := []struct {
		name string
		doc  string
	}{
		{name: "not xml", doc: "not a schema at all"},
		{name: "wrong root", doc: `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"></definitions>`},
		{name: "no global elements", doc: `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"></xs:schema>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchema([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
