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

	"github.com/wso2/xml-ingestion-service/internal/clients/model"
	"github.com/wso2/xml-ingestion-service/internal/clients/store"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

// ClientServiceInterface defines the operations of the client onboarding
// surface.
type ClientServiceInterface interface {
	AddClient(client model.Client) (*model.Client, error)
	GetClients() ([]model.Client, error)
	GetClient(clientId int64) (*model.Client, error)
	UpdateClient(clientId int64, client model.Client) (*model.Client, error)
	DeleteClient(clientId int64) error
}

// ClientService is the default implementation of the ClientServiceInterface.
type ClientService struct{}

// GetClientService creates a new instance of ClientService.
func GetClientService() ClientServiceInterface {

	return &ClientService{}
}

func (cs *ClientService) AddClient(client model.Client) (*model.Client, error) {

	if err := validateClient(&client); err != nil {
		return nil, err
	}

	currentTime := time.Now().UTC().Unix()
	client.CreatedAt = currentTime
	client.UpdatedAt = currentTime

	return store.AddClient(client)
}

func (cs *ClientService) GetClients() ([]model.Client, error) {
	return store.GetClients()
}

func (cs *ClientService) GetClient(clientId int64) (*model.Client, error) {

	client, err := store.GetClient(clientId)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, clientNotFound(clientId)
	}
	return client, nil
}

func (cs *ClientService) UpdateClient(clientId int64, client model.Client) (*model.Client, error) {

	client.Id = clientId
	if err := validateClient(&client); err != nil {
		return nil, err
	}
	client.UpdatedAt = time.Now().UTC().Unix()

	updated, err := store.UpdateClient(client)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, clientNotFound(clientId)
	}
	return store.GetClient(clientId)
}

// DeleteClient removes a client. Clients still owning interfaces are never
// physically deleted: the caller must deactivate or remove the interfaces
// first, which preserves the processed-file history tied to them.
func (cs *ClientService) DeleteClient(clientId int64) error {

	client, err := store.GetClient(clientId)
	if err != nil {
		return err
	}
	if client == nil {
		return clientNotFound(clientId)
	}

	interfaceCount, err := store.CountInterfaces(clientId)
	if err != nil {
		return err
	}
	if interfaceCount > 0 {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CLIENT_HAS_INTERFACES.Code,
			Message:     errors.CLIENT_HAS_INTERFACES.Message,
			Description: fmt.Sprintf("Client %d still owns %d interface(s).", clientId, interfaceCount),
		}, http.StatusConflict)
	}

	deleted, err := store.DeleteClient(clientId)
	if err != nil {
		return err
	}
	if !deleted {
		return clientNotFound(clientId)
	}
	return nil
}

// validateClient normalizes and validates the inbound client payload.
func validateClient(client *model.Client) error {

	client.Name = strings.TrimSpace(client.Name)
	if client.Name == "" {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: "Client name is required.",
		}, http.StatusBadRequest)
	}

	if client.Status == "" {
		client.Status = constants.ClientStatusPending
	}
	if !constants.AllowedClientStatuses[client.Status] {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.VALIDATION_ERROR.Code,
			Message:     errors.VALIDATION_ERROR.Message,
			Description: fmt.Sprintf("'%s' is not an expected client status.", client.Status),
		}, http.StatusBadRequest)
	}
	return nil
}

func clientNotFound(clientId int64) error {
	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.CLIENT_NOT_FOUND.Code,
		Message:     errors.CLIENT_NOT_FOUND.Message,
		Description: fmt.Sprintf("No client record found for id: %d.", clientId),
	}, http.StatusNotFound)
}
