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
	"strings"

	"github.com/wso2/xml-ingestion-service/internal/files/model"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/database/provider"
	errors2 "github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

const fileColumns = `file_id, filename, client_id, interface_id, status, records_processed,
	error_message, created_at, processed_date`

// AddProcessedFile records a newly accepted upload in PROCESSING state.
func AddProcessedFile(file model.ProcessedFile) (*model.ProcessedFile, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for recording file: %s.", file.FileId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_PROCESSED_FILE.Code,
			Message:     errors2.ADD_PROCESSED_FILE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `INSERT INTO processed_files
		(file_id, filename, client_id, interface_id, status, records_processed, error_message, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	_, err = dbClient.Exec(query, file.FileId, file.Filename, file.ClientId, file.InterfaceId,
		file.Status, file.RecordsProcessed, file.ErrorMessage, file.CreatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to record processed file: %s.", file.FileId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_PROCESSED_FILE.Code,
			Message:     errors2.ADD_PROCESSED_FILE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("File: %s recorded as %s.", file.FileId, file.Status))
	return &file, nil
}

// CompleteProcessedFile moves a PROCESSING entry to COMPLETED. The status
// guard in the predicate makes the transition monotonic: a worker retrying a
// finished file changes nothing.
func CompleteProcessedFile(fileId string, recordsProcessed int64, processedDate int64) (bool, error) {

	return finishProcessedFile(fileId,
		`UPDATE processed_files SET status=$1, records_processed=$2, processed_date=$3
			WHERE file_id=$4 AND status=$5`,
		constants.FileStatusCompleted, recordsProcessed, processedDate, fileId,
		constants.FileStatusProcessing)
}

// FailProcessedFile moves a PROCESSING entry to FAILED with the failure
// reason. Monotonic under the same status guard as completion.
func FailProcessedFile(fileId string, errorMessage string, processedDate int64) (bool, error) {

	return finishProcessedFile(fileId,
		`UPDATE processed_files SET status=$1, error_message=$2, processed_date=$3
			WHERE file_id=$4 AND status=$5`,
		constants.FileStatusFailed, errorMessage, processedDate, fileId,
		constants.FileStatusProcessing)
}

func finishProcessedFile(fileId string, query string, args ...interface{}) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for finishing file: %s.", fileId)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_PROCESSED_FILE.Code,
			Message:     errors2.UPDATE_PROCESSED_FILE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	result, err := dbClient.Exec(query, args...)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update processed file: %s.", fileId)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_PROCESSED_FILE.Code,
			Message:     errors2.UPDATE_PROCESSED_FILE.Message,
			Description: errorMsg,
		}, err)
	}

	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// GetProcessedFile fetches one registry entry by id. Returns nil when it
// does not exist.
func GetProcessedFile(fileId string) (*model.ProcessedFile, error) {

	query := fmt.Sprintf(`SELECT %s FROM processed_files WHERE file_id = $1`, fileColumns)
	files, err := fetchProcessedFiles(query, fileId)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return &files[0], nil
}

// QueryProcessedFiles returns one page of registry entries matching the
// filters, newest first, with the total match count computed over the same
// predicate.
func QueryProcessedFiles(query model.FileQuery) (*model.FilePage, error) {

	where, args := buildFilePredicate(query)

	countQuery := "SELECT COUNT(*) AS total FROM processed_files" + where
	listQuery := fmt.Sprintf("SELECT %s FROM processed_files%s ORDER BY created_at DESC, file_id"+
		" LIMIT $%d OFFSET $%d", fileColumns, where, len(args)+1, len(args)+2)

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for querying processed files."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PROCESSED_FILES.Code,
			Message:     errors2.FETCH_PROCESSED_FILES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	countResults, err := dbClient.ExecuteQuery(countQuery, args...)
	if err != nil {
		errorMsg := "Failed to count processed files."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PROCESSED_FILES.Code,
			Message:     errors2.FETCH_PROCESSED_FILES.Message,
			Description: errorMsg,
		}, err)
	}
	var total int64
	if len(countResults) == 1 {
		total = countResults[0]["total"].(int64)
	}

	listArgs := append(append([]interface{}{}, args...), query.Page.Size, query.Page.Offset())
	results, err := dbClient.ExecuteQuery(listQuery, listArgs...)
	if err != nil {
		errorMsg := "Failed to fetch processed files."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PROCESSED_FILES.Code,
			Message:     errors2.FETCH_PROCESSED_FILES.Message,
			Description: errorMsg,
		}, err)
	}

	return &model.FilePage{
		Files:      scanProcessedFiles(results),
		TotalCount: total,
		Page:       query.Page.Number,
		PageSize:   query.Page.Size,
	}, nil
}

// buildFilePredicate renders the conjunctive WHERE clause for the set
// filters. Date bounds are inclusive and match the processed date, so
// entries still in flight only appear in unbounded queries.
func buildFilePredicate(query model.FileQuery) (string, []interface{}) {

	var conditions []string
	var args []interface{}

	addCondition := func(expr string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if query.ClientId > 0 {
		addCondition("client_id = $%d", query.ClientId)
	}
	if query.InterfaceId > 0 {
		addCondition("interface_id = $%d", query.InterfaceId)
	}
	if query.Status != "" {
		addCondition("status = $%d", query.Status)
	}
	if query.StartDate > 0 {
		addCondition("processed_date >= $%d", query.StartDate)
	}
	if query.EndDate > 0 {
		addCondition("processed_date <= $%d", query.EndDate)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func fetchProcessedFiles(query string, args ...interface{}) ([]model.ProcessedFile, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching processed files."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PROCESSED_FILES.Code,
			Message:     errors2.FETCH_PROCESSED_FILES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to fetch processed files."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PROCESSED_FILES.Code,
			Message:     errors2.FETCH_PROCESSED_FILES.Message,
			Description: errorMsg,
		}, err)
	}
	return scanProcessedFiles(results), nil
}

func scanProcessedFiles(results []map[string]interface{}) []model.ProcessedFile {

	files := []model.ProcessedFile{}
	for _, row := range results {
		var file model.ProcessedFile
		file.FileId = row["file_id"].(string)
		file.Filename = row["filename"].(string)
		file.ClientId = row["client_id"].(int64)
		file.InterfaceId = row["interface_id"].(int64)
		file.Status = row["status"].(string)
		file.RecordsProcessed = row["records_processed"].(int64)
		file.ErrorMessage = row["error_message"].(string)
		file.CreatedAt = row["created_at"].(int64)
		if processedDate, ok := row["processed_date"].(int64); ok {
			file.ProcessedDate = processedDate
		}
		files = append(files, file)
	}
	return files
}
