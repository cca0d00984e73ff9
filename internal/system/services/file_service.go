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

package services

import (
	"fmt"
	"net/http"

	filehandler "github.com/wso2/xml-ingestion-service/internal/files/handler"
	uploadhandler "github.com/wso2/xml-ingestion-service/internal/pipeline/handler"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
)

// FileService exposes the ingestion boundary and the processed-file
// registry.
type FileService struct {
	fileHandler   *filehandler.FileHandler
	uploadHandler *uploadhandler.UploadHandler
}

func NewFileService(mux *http.ServeMux, apiBasePath string) *FileService {

	instance := &FileService{
		fileHandler:   filehandler.NewFileHandler(),
		uploadHandler: uploadhandler.NewUploadHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *FileService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s/files/upload", apiBasePath),
		secure(constants.OpUploadFiles, s.uploadHandler.UploadFile))
	mux.HandleFunc(fmt.Sprintf("GET %s/files", apiBasePath),
		secure(constants.OpReadFiles, s.fileHandler.QueryProcessedFiles))
	mux.HandleFunc(fmt.Sprintf("GET %s/files/", apiBasePath),
		secure(constants.OpReadFiles, s.fileHandler.GetProcessedFile))
}
