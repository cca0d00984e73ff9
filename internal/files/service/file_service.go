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
	"time"

	"github.com/wso2/xml-ingestion-service/internal/files/model"
	"github.com/wso2/xml-ingestion-service/internal/files/store"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

// FileServiceInterface exposes the processed-file registry.
type FileServiceInterface interface {
	QueryProcessedFiles(query model.FileQuery) (*model.FilePage, error)
	GetProcessedFile(fileId string) (*model.ProcessedFile, error)
	RecordSubmission(file model.ProcessedFile) (*model.ProcessedFile, error)
	CompleteFile(fileId string, recordsProcessed int64) error
	FailFile(fileId string, errorMessage string) error
}

// FileService is the default implementation of the FileServiceInterface.
type FileService struct{}

// GetFileService creates a new instance of FileService.
func GetFileService() FileServiceInterface {

	return &FileService{}
}

func (fs *FileService) QueryProcessedFiles(query model.FileQuery) (*model.FilePage, error) {

	if query.Status != "" && !constants.AllowedFileStatuses[query.Status] {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: fmt.Sprintf("'%s' is not an expected file status.", query.Status),
		}, http.StatusBadRequest)
	}
	if query.StartDate > 0 && query.EndDate > 0 && query.StartDate > query.EndDate {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: "startDate must not be after endDate.",
		}, http.StatusBadRequest)
	}
	query.Page = query.Page.OrDefault()
	return store.QueryProcessedFiles(query)
}

func (fs *FileService) GetProcessedFile(fileId string) (*model.ProcessedFile, error) {

	file, err := store.GetProcessedFile(fileId)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.PROCESSED_FILE_NOT_FOUND.Code,
			Message:     errors.PROCESSED_FILE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No registry entry found for file id: %s.", fileId),
		}, http.StatusNotFound)
	}
	return file, nil
}

// RecordSubmission writes the PROCESSING entry for a newly accepted upload.
func (fs *FileService) RecordSubmission(file model.ProcessedFile) (*model.ProcessedFile, error) {

	file.Status = constants.FileStatusProcessing
	file.CreatedAt = time.Now().UTC().Unix()
	return store.AddProcessedFile(file)
}

// CompleteFile finalizes a PROCESSING entry as COMPLETED. Finished entries
// are left untouched.
func (fs *FileService) CompleteFile(fileId string, recordsProcessed int64) error {

	transitioned, err := store.CompleteProcessedFile(fileId, recordsProcessed, time.Now().UTC().Unix())
	if err != nil {
		return err
	}
	if !transitioned {
		log.GetLogger().Warn(fmt.Sprintf("File: %s was not in PROCESSING; completion skipped.", fileId))
	}
	return nil
}

// FailFile finalizes a PROCESSING entry as FAILED with the failure reason.
func (fs *FileService) FailFile(fileId string, errorMessage string) error {

	transitioned, err := store.FailProcessedFile(fileId, errorMessage, time.Now().UTC().Unix())
	if err != nil {
		return err
	}
	if !transitioned {
		log.GetLogger().Warn(fmt.Sprintf("File: %s was not in PROCESSING; failure skipped.", fileId))
	}
	return nil
}
