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
	"crypto/sha256"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	interfaceprovider "github.com/wso2/xml-ingestion-service/internal/interfaces/provider"
	"github.com/wso2/xml-ingestion-service/internal/schema/model"
	"github.com/wso2/xml-ingestion-service/internal/system/cache"
	"github.com/wso2/xml-ingestion-service/internal/system/config"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

const defaultCacheTTL = 300

var (
	schemaCache     *cache.Cache
	schemaCacheOnce sync.Once
)

// SchemaServiceInterface exposes the schema introspection surface.
type SchemaServiceInterface interface {
	GetSchemaElements(interfaceId int64) ([]model.SchemaElement, error)
}

// SchemaService is the default implementation of the SchemaServiceInterface.
type SchemaService struct{}

// GetSchemaService creates a new instance of SchemaService.
func GetSchemaService() SchemaServiceInterface {

	return &SchemaService{}
}

// GetSchemaElements resolves the interface's schema document, parses it and
// returns the flattened element list. Parsed schemas are cached per interface
// and document digest, so editing the XSD on disk invalidates the entry
// without a restart.
func (ss *SchemaService) GetSchemaElements(interfaceId int64) ([]model.SchemaElement, error) {

	iface, err := interfaceprovider.NewInterfaceProvider().GetInterfaceService().GetInterface(interfaceId)
	if err != nil {
		return nil, err
	}
	if iface.SchemaPath == "" {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.SCHEMA_NOT_FOUND.Code,
			Message:     errors.SCHEMA_NOT_FOUND.Message,
			Description: fmt.Sprintf("Interface %d has no schema document registered.", interfaceId),
		}, http.StatusNotFound)
	}

	schemaDir := config.GetRuntime().Config.Schema.Dir
	data, err := os.ReadFile(filepath.Join(schemaDir, filepath.Clean(iface.SchemaPath)))
	if err != nil {
		log.GetLogger().Debug(fmt.Sprintf("Failed to read schema for interface: %d.", interfaceId),
			log.Error(err))
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.SCHEMA_NOT_FOUND.Code,
			Message:     errors.SCHEMA_NOT_FOUND.Message,
			Description: fmt.Sprintf("Schema document '%s' could not be read.", iface.SchemaPath),
		}, http.StatusNotFound)
	}

	cacheKey := fmt.Sprintf("%d:%x", interfaceId, sha256.Sum256(data))
	if cached, found := getSchemaCache().Get(cacheKey); found {
		return cached.([]model.SchemaElement), nil
	}

	elements, err := ParseSchema(data)
	if err != nil {
		log.GetLogger().Debug(fmt.Sprintf("Failed to parse schema for interface: %d.", interfaceId),
			log.Error(err))
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.SCHEMA_INVALID.Code,
			Message:     errors.SCHEMA_INVALID.Message,
			Description: fmt.Sprintf("Schema document '%s' is not a valid XSD: %s.", iface.SchemaPath,
				err.Error()),
		}, http.StatusUnprocessableEntity)
	}

	getSchemaCache().Set(cacheKey, elements)
	return elements, nil
}

func getSchemaCache() *cache.Cache {

	schemaCacheOnce.Do(func() {
		ttl := config.GetRuntime().Config.Schema.CacheTTL
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		schemaCache = cache.NewCache(time.Duration(ttl) * time.Second)
	})
	return schemaCache
}
