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

package store

import (
	"strings"

	"github.com/wso2/xml-ingestion-service/internal/catalog/model"
	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	errors2 "github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

// Tables owned by the service itself are never offered as mapping targets.
var reservedTables = map[string]bool{
	"clients":         true,
	"interfaces":      true,
	"mapping_rules":   true,
	"processed_files": true,
}

// GetTargetTables reads the relational catalog and returns the user tables
// in the public schema whose name starts with prefix, with their columns in
// catalog order. An empty prefix matches every table.
func GetTargetTables(prefix string) ([]model.TargetTable, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for reading the catalog."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CATALOG_QUERY.Code,
			Message:     errors2.CATALOG_QUERY.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT table_name, column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name LIKE $1
		ORDER BY table_name, ordinal_position`

	results, err := dbClient.ExecuteQuery(query, prefixPattern(prefix))
	if err != nil {
		errorMsg := "Failed to query information_schema for target tables."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CATALOG_QUERY.Code,
			Message:     errors2.CATALOG_QUERY.Message,
			Description: errorMsg,
		}, err)
	}

	tables := []model.TargetTable{}
	index := map[string]int{}
	for _, row := range results {
		tableName := row["table_name"].(string)
		if reservedTables[tableName] {
			continue
		}
		pos, known := index[tableName]
		if !known {
			tables = append(tables, model.TargetTable{Name: tableName})
			pos = len(tables) - 1
			index[tableName] = pos
		}
		tables[pos].Columns = append(tables[pos].Columns, model.TargetField{
			Name:     row["column_name"].(string),
			DataType: row["data_type"].(string),
			Nullable: row["is_nullable"].(string) == "YES",
		})
	}
	return tables, nil
}

// GetTargetTable returns one table's columns, or nil when the table is not
// part of the prefix-scoped catalog.
func GetTargetTable(prefix string, tableName string) (*model.TargetTable, error) {

	tables, err := GetTargetTables(prefix)
	if err != nil {
		return nil, err
	}
	for i := range tables {
		if tables[i].Name == tableName {
			return &tables[i], nil
		}
	}
	return nil, nil
}

// prefixPattern renders the LIKE pattern for a literal table-name prefix,
// escaping the wildcard characters LIKE would otherwise interpret.
func prefixPattern(prefix string) string {

	escaped := strings.NewReplacer(`\`, `\\`, `_`, `\_`, `%`, `\%`).Replace(prefix)
	return escaped + "%"
}
