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
	"time"

	clientstore "github.com/wso2/xml-ingestion-service/internal/clients/store"
	"github.com/wso2/xml-ingestion-service/internal/interfaces/model"
	"github.com/wso2/xml-ingestion-service/internal/interfaces/store"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

// InterfaceServiceInterface defines the operations of the interface
// management surface.
type InterfaceServiceInterface interface {
	AddInterface(iface model.Interface) (*model.Interface, error)
	GetInterfaces() ([]model.Interface, error)
	GetInterfacesByClient(clientId int64) ([]model.Interface, error)
	GetInterface(interfaceId int64) (*model.Interface, error)
	UpdateInterface(interfaceId int64, iface model.Interface) (*model.Interface, error)
	DeleteInterface(interfaceId int64) error
}

// InterfaceService is the default implementation of the
// InterfaceServiceInterface.
type InterfaceService struct{}

// GetInterfaceService creates a new instance of InterfaceService.
func GetInterfaceService() InterfaceServiceInterface {

	return &InterfaceService{}
}

func (is *InterfaceService) AddInterface(iface model.Interface) (*model.Interface, error) {

	if err := validateInterface(&iface); err != nil {
		return nil, err
	}
	if err := resolveOwner(iface.ClientId); err != nil {
		return nil, err
	}

	currentTime := time.Now().UTC().Unix()
	iface.CreatedAt = currentTime
	iface.UpdatedAt = currentTime

	return store.AddInterface(iface)
}

func (is *InterfaceService) GetInterfaces() ([]model.Interface, error) {
	return store.GetInterfaces()
}

func (is *InterfaceService) GetInterfacesByClient(clientId int64) ([]model.Interface, error) {

	if err := resolveOwner(clientId); err != nil {
		return nil, err
	}
	return store.GetInterfacesByClient(clientId)
}

func (is *InterfaceService) GetInterface(interfaceId int64) (*model.Interface, error) {

	iface, err := store.GetInterface(interfaceId)
	if err != nil {
		return nil, err
	}
	if iface == nil {
		return nil, interfaceNotFound(interfaceId)
	}
	return iface, nil
}

// UpdateInterface persists the mutable fields of an interface. Ownership is
// immutable: the stored client id always wins over whatever the payload
// carries.
func (is *InterfaceService) UpdateInterface(interfaceId int64, iface model.Interface) (
	*model.Interface, error) {

	existing, err := store.GetInterface(interfaceId)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, interfaceNotFound(interfaceId)
	}

	iface.Id = interfaceId
	iface.ClientId = existing.ClientId
	if err := validateInterface(&iface); err != nil {
		return nil, err
	}
	iface.UpdatedAt = time.Now().UTC().Unix()

	updated, err := store.UpdateInterface(iface)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, interfaceNotFound(interfaceId)
	}
	return store.GetInterface(interfaceId)
}

// DeleteInterface removes an interface. Interfaces that still carry mapping
// rules are never physically deleted so that an accidental delete cannot
// silently drop a working configuration.
func (is *InterfaceService) DeleteInterface(interfaceId int64) error {

	iface, err := store.GetInterface(interfaceId)
	if err != nil {
		return err
	}
	if iface == nil {
		return interfaceNotFound(interfaceId)
	}

	ruleCount, err := store.CountMappingRules(interfaceId)
	if err != nil {
		return err
	}
	if ruleCount > 0 {
		return errors.NewClientError(errors.ErrorMessage{
			Code:    errors.INTERFACE_HAS_RULES.Code,
			Message: errors.INTERFACE_HAS_RULES.Message,
			Description: fmt.Sprintf("Interface %d still carries %d mapping rule(s).", interfaceId,
				ruleCount),
		}, http.StatusConflict)
	}

	deleted, err := store.DeleteInterface(interfaceId)
	if err != nil {
		return err
	}
	if !deleted {
		return interfaceNotFound(interfaceId)
	}
	return nil
}

// validateInterface normalizes and validates the inbound interface payload.
func validateInterface(iface *model.Interface) error {

	iface.Name = strings.TrimSpace(iface.Name)
	if iface.Name == "" {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: "Interface name is required.",
		}, http.StatusBadRequest)
	}
	if iface.ClientId <= 0 {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: "A valid client id is required.",
		}, http.StatusBadRequest)
	}

	if iface.ContentType == "" {
		iface.ContentType = constants.ContentTypeXML
	}
	if iface.Status == "" {
		iface.Status = constants.InterfaceStatusActive
	}
	if !constants.AllowedInterfaceStatuses[iface.Status] {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: fmt.Sprintf("'%s' is not an expected interface status.", iface.Status),
		}, http.StatusBadRequest)
	}
	return nil
}

// resolveOwner fails with a not-found error when the owning client does not
// exist.
func resolveOwner(clientId int64) error {

	client, err := clientstore.GetClient(clientId)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CLIENT_NOT_FOUND.Code,
			Message:     errors.CLIENT_NOT_FOUND.Message,
			Description: fmt.Sprintf("No client record found for id: %d.", clientId),
		}, http.StatusNotFound)
	}
	return nil
}

func interfaceNotFound(interfaceId int64) error {
	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.INTERFACE_NOT_FOUND.Code,
		Message:     errors.INTERFACE_NOT_FOUND.Message,
		Description: fmt.Sprintf("No interface record found for id: %d.", interfaceId),
	}, http.StatusNotFound)
}
