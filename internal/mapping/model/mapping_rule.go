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

package model

import (
	catalogmodel "github.com/wso2/xml-ingestion-service/internal/catalog/model"
	schemamodel "github.com/wso2/xml-ingestion-service/internal/schema/model"
)

// MappingRule binds one XML path of an interface schema to one column of a
// target table. At most one rule may exist per (interface, xml path) pair.
type MappingRule struct {
	Id            int64  `json:"id,omitempty"`
	ClientId      int64  `json:"client_id"`
	InterfaceId   int64  `json:"interface_id"`
	XmlPath       string `json:"xml_path"`
	XsdElement    string `json:"xsd_element,omitempty"`
	TableName     string `json:"table_name"`
	DatabaseField string `json:"database_field"`
	DataType      string `json:"data_type,omitempty"`
	IsAttribute   bool   `json:"is_attribute"`
	Description   string `json:"description,omitempty"`
	CreatedAt     int64  `json:"created_at,omitempty"`
	UpdatedAt     int64  `json:"updated_at,omitempty"`
}

// MappingSurface is everything the configuration UI needs to edit an
// interface's mapping in one round trip: the schema elements on the left,
// the catalog tables on the right and the rules already bound between them.
type MappingSurface struct {
	InterfaceId    int64                       `json:"interface_id"`
	SchemaElements []schemamodel.SchemaElement `json:"schema_elements"`
	TargetTables   []catalogmodel.TargetTable  `json:"target_tables"`
	Rules          []MappingRule               `json:"rules"`
}

// ReplaceRequest carries a wholesale mapping configuration save.
type ReplaceRequest struct {
	Rules []MappingRule `json:"rules"`
}
