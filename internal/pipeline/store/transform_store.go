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
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"
	"github.com/wso2/xml-ingestion-service/internal/pipeline/model"
	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	errors2 "github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

// WriteRows inserts the transformed rows in one transaction, so a document
// either lands completely or not at all. Table and column names were
// validated against the catalog when the rules were saved; identifiers are
// still quoted on the way in.
func WriteRows(fileId string, rows []model.TableRow) error {

	if len(rows) == 0 {
		return nil
	}

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for writing rows of file: %s.", fileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TRANSFORM_WRITE.Code,
			Message:     errors2.TRANSFORM_WRITE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for writing rows of file: %s.", fileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TRANSFORM_WRITE.Code,
			Message:     errors2.TRANSFORM_WRITE.Message,
			Description: errorMsg,
		}, err)
	}

	for _, row := range rows {
		query, args := buildInsert(row)
		if _, err := tx.Exec(query, args...); err != nil {
			_ = tx.Rollback()
			errorMsg := fmt.Sprintf("Failed to insert row into table '%s' for file: %s.", row.TableName,
				fileId)
			logger.Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.TRANSFORM_WRITE.Code,
				Message:     errors2.TRANSFORM_WRITE.Message,
				Description: errorMsg,
			}, err)
		}
	}

	if err := tx.Commit(); err != nil {
		errorMsg := fmt.Sprintf("Failed to commit rows of file: %s.", fileId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TRANSFORM_WRITE.Code,
			Message:     errors2.TRANSFORM_WRITE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Debug(fmt.Sprintf("Wrote %d row(s) for file: %s.", len(rows), fileId))
	return nil
}

func buildInsert(row model.TableRow) (string, []interface{}) {

	columns := make([]string, 0, len(row.Values))
	for column := range row.Values {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, column := range columns {
		quoted[i] = pq.QuoteIdentifier(column)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row.Values[column]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", pq.QuoteIdentifier(row.TableName),
		strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
	return query, args
}
