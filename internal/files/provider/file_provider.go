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

package provider

import (
	"github.com/wso2/xml-ingestion-service/internal/files/service"
)

// FileProviderInterface defines the interface for the file provider.
type FileProviderInterface interface {
	GetFileService() service.FileServiceInterface
}

// FileProvider is the default implementation of the FileProviderInterface.
type FileProvider struct{}

// NewFileProvider creates a new instance of FileProvider.
func NewFileProvider() FileProviderInterface {

	return &FileProvider{}
}

// GetFileService returns the file service instance.
func (fp *FileProvider) GetFileService() service.FileServiceInterface {

	return service.GetFileService()
}
