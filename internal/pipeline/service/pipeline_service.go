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

	"github.com/google/uuid"
	filemodel "github.com/wso2/xml-ingestion-service/internal/files/model"
	fileprovider "github.com/wso2/xml-ingestion-service/internal/files/provider"
	interfaceprovider "github.com/wso2/xml-ingestion-service/internal/interfaces/provider"
	mappingprovider "github.com/wso2/xml-ingestion-service/internal/mapping/provider"
	"github.com/wso2/xml-ingestion-service/internal/pipeline/model"
	"github.com/wso2/xml-ingestion-service/internal/pipeline/store"
	"github.com/wso2/xml-ingestion-service/internal/system/config"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
	"github.com/wso2/xml-ingestion-service/internal/system/workers"
)

// PipelineServiceInterface is the ingestion boundary. SubmitFile validates
// and registers an upload; ProcessSubmission is the worker-side consumer.
type PipelineServiceInterface interface {
	SubmitFile(submission model.Submission) (*filemodel.ProcessedFile, error)
	ProcessSubmission(submission model.Submission)
}

// PipelineService is the default implementation of the
// PipelineServiceInterface.
type PipelineService struct{}

// GetPipelineService creates a new instance of PipelineService.
func GetPipelineService() PipelineServiceInterface {

	return &PipelineService{}
}

// SubmitFile validates the upload against the scope it claims and registers
// it for processing. Every rejection here happens before the registry entry
// is created; once a file id exists, its outcome is always recorded.
func (ps *PipelineService) SubmitFile(submission model.Submission) (*filemodel.ProcessedFile, error) {

	if err := validateSubmission(&submission); err != nil {
		return nil, err
	}

	iface, err := interfaceprovider.NewInterfaceProvider().GetInterfaceService().
		GetInterface(submission.InterfaceId)
	if err != nil {
		return nil, err
	}
	if iface.ClientId != submission.ClientId {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:    errors.VALIDATION_ERROR.Code,
			Message: errors.VALIDATION_ERROR.Message,
			Description: fmt.Sprintf("Interface %d does not belong to client %d.",
				submission.InterfaceId, submission.ClientId),
		}, http.StatusBadRequest)
	}
	if iface.Status != constants.InterfaceStatusActive {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.INTERFACE_INACTIVE.Code,
			Message:     errors.INTERFACE_INACTIVE.Message,
			Description: fmt.Sprintf("Interface %d is %s.", submission.InterfaceId, iface.Status),
		}, http.StatusConflict)
	}

	submission.FileId = uuid.NewString()
	fileService := fileprovider.NewFileProvider().GetFileService()
	record, err := fileService.RecordSubmission(filemodel.ProcessedFile{
		FileId:      submission.FileId,
		Filename:    submission.Filename,
		ClientId:    submission.ClientId,
		InterfaceId: submission.InterfaceId,
	})
	if err != nil {
		return nil, err
	}

	if !workers.Enqueue(submission) {
		if failErr := fileService.FailFile(submission.FileId, "ingestion queue at capacity"); failErr != nil {
			log.GetLogger().Error(fmt.Sprintf("Failed to mark file: %s as failed.", submission.FileId),
				log.Error(failErr))
		}
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.INGESTION_QUEUE_FULL.Code,
			Message:     errors.INGESTION_QUEUE_FULL.Message,
			Description: "The ingestion queue is at capacity. Retry shortly.",
		}, http.StatusServiceUnavailable)
	}

	log.GetLogger().Info(fmt.Sprintf("File: %s accepted for interface: %d.", submission.FileId,
		submission.InterfaceId))
	return record, nil
}

// ProcessSubmission runs one queued file through transform and load, then
// finalizes its registry entry exactly once.
func (ps *PipelineService) ProcessSubmission(submission model.Submission) {

	logger := log.GetLogger()
	fileService := fileprovider.NewFileProvider().GetFileService()

	fail := func(reason string) {
		logger.Warn(fmt.Sprintf("File: %s failed: %s", submission.FileId, reason))
		if err := fileService.FailFile(submission.FileId, reason); err != nil {
			logger.Error(fmt.Sprintf("Failed to mark file: %s as failed.", submission.FileId),
				log.Error(err))
		}
	}

	rules, err := mappingprovider.NewMappingProvider().GetMappingService().
		GetMappingRules(submission.InterfaceId)
	if err != nil {
		fail("could not load mapping configuration: " + err.Error())
		return
	}

	result, err := Transform(submission.Payload, rules)
	if err != nil {
		fail(err.Error())
		return
	}

	if err := store.WriteRows(submission.FileId, result.Rows); err != nil {
		fail("could not persist transformed records: " + err.Error())
		return
	}

	if err := fileService.CompleteFile(submission.FileId, result.RecordsProcessed); err != nil {
		logger.Error(fmt.Sprintf("Failed to mark file: %s as completed.", submission.FileId),
			log.Error(err))
		return
	}
	logger.Info(fmt.Sprintf("File: %s completed with %d record(s).", submission.FileId,
		result.RecordsProcessed))
}

func validateSubmission(submission *model.Submission) error {

	submission.Filename = strings.TrimSpace(submission.Filename)

	var problems []string
	if submission.ClientId <= 0 {
		problems = append(problems, "a valid client id is required")
	}
	if submission.InterfaceId <= 0 {
		problems = append(problems, "a valid interface id is required")
	}
	if submission.Filename == "" {
		problems = append(problems, "a filename is required")
	}
	if len(submission.Payload) == 0 {
		problems = append(problems, "the payload is empty")
	}

	maxFileSize := config.GetRuntime().Config.Pipeline.MaxFileSize
	if maxFileSize <= 0 {
		maxFileSize = constants.DefaultMaxFileSize
	}
	if int64(len(submission.Payload)) > maxFileSize {
		problems = append(problems, fmt.Sprintf("the payload exceeds the %d byte limit", maxFileSize))
	}

	if len(problems) > 0 {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: strings.Join(problems, "; ") + ".",
		}, http.StatusBadRequest)
	}
	return nil
}
