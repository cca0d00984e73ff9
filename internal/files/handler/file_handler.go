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
	"net/http"
	"strings"

	"github.com/wso2/xml-ingestion-service/internal/files/model"
	"github.com/wso2/xml-ingestion-service/internal/files/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/pagination"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type FileHandler struct{}

func NewFileHandler() *FileHandler {

	return &FileHandler{}
}

// QueryProcessedFiles handles GET /files with optional clientId, interfaceId,
// status, startDate, endDate and pagination parameters.
func (fh *FileHandler) QueryProcessedFiles(w http.ResponseWriter, r *http.Request) {

	query, err := parseFileQuery(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	fileService := provider.NewFileProvider().GetFileService()
	page, err := fileService.QueryProcessedFiles(*query)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, page)
}

// GetProcessedFile handles GET /files/:id
func (fh *FileHandler) GetProcessedFile(w http.ResponseWriter, r *http.Request) {

	parts := strings.Split(strings.TrimSuffix(r.URL.Path, "/"), "/")
	fileId := parts[len(parts)-1]

	fileService := provider.NewFileProvider().GetFileService()
	file, err := fileService.GetProcessedFile(fileId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, file)
}

func parseFileQuery(r *http.Request) (*model.FileQuery, error) {

	clientId, err := utils.ParseOptionalInt64Query(r, constants.ParamClientId)
	if err != nil {
		return nil, err
	}
	interfaceId, err := utils.ParseOptionalInt64Query(r, constants.ParamInterfaceId)
	if err != nil {
		return nil, err
	}
	startDate, err := utils.ParseOptionalInt64Query(r, constants.ParamStartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseOptionalInt64Query(r, constants.ParamEndDate)
	if err != nil {
		return nil, err
	}

	page, err := pagination.ParsePage(r)
	if err != nil {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: err.Error() + ".",
		}, http.StatusBadRequest)
	}

	return &model.FileQuery{
		ClientId:    clientId,
		InterfaceId: interfaceId,
		Status:      r.URL.Query().Get(constants.ParamStatus),
		StartDate:   startDate,
		EndDate:     endDate,
		Page:        page,
	}, nil
}
