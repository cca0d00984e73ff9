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

package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/wso2/xml-ingestion-service/internal/pipeline/model"
	"github.com/wso2/xml-ingestion-service/internal/pipeline/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/config"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {

	return &UploadHandler{}
}

// UploadFile handles POST /files/upload. The body is a multipart form with a
// "file" part and clientId/interfaceId form fields; a raw XML body with the
// same values as query parameters is accepted as well.
func (uh *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {

	submission, err := parseUpload(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	pipelineService := provider.NewPipelineProvider().GetPipelineService()
	record, err := pipelineService.SubmitFile(*submission)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusAccepted, record)
}

func parseUpload(r *http.Request) (*model.Submission, error) {

	maxFileSize := config.GetRuntime().Config.Pipeline.MaxFileSize
	if maxFileSize <= 0 {
		maxFileSize = constants.DefaultMaxFileSize
	}
	r.Body = http.MaxBytesReader(nil, r.Body, maxFileSize+1)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return parseMultipartUpload(r, maxFileSize)
	}

	clientId, err := utils.ParseInt64Query(r, constants.ParamClientId)
	if err != nil {
		return nil, err
	}
	interfaceId, err := utils.ParseInt64Query(r, constants.ParamInterfaceId)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, payloadTooLarge(maxFileSize)
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "upload.xml"
	}
	return &model.Submission{
		Filename:    filename,
		ClientId:    clientId,
		InterfaceId: interfaceId,
		Payload:     payload,
	}, nil
}

func parseMultipartUpload(r *http.Request, maxFileSize int64) (*model.Submission, error) {

	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Malformed multipart body.",
		}, http.StatusBadRequest)
	}

	clientId, err := parseFormInt64(r, constants.ParamClientId)
	if err != nil {
		return nil, err
	}
	interfaceId, err := parseFormInt64(r, constants.ParamInterfaceId)
	if err != nil {
		return nil, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: "Missing required form part: file.",
		}, http.StatusBadRequest)
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return nil, payloadTooLarge(maxFileSize)
	}

	return &model.Submission{
		Filename:    header.Filename,
		ClientId:    clientId,
		InterfaceId: interfaceId,
		Payload:     payload,
	}, nil
}

func parseFormInt64(r *http.Request, name string) (int64, error) {

	raw := r.FormValue(name)
	if raw == "" {
		return 0, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: "Missing required form field: " + name,
		}, http.StatusBadRequest)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: "Form field must be an integer: " + name,
		}, http.StatusBadRequest)
	}
	return v, nil
}

func payloadTooLarge(maxFileSize int64) error {

	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.VALIDATION_ERROR.Code,
		Message:     errors.VALIDATION_ERROR.Message,
		Description: "The payload could not be read or exceeds the size limit.",
	}, http.StatusRequestEntityTooLarge)
}
