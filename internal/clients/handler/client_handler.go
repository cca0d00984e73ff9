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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wso2/xml-ingestion-service/internal/clients/model"
	"github.com/wso2/xml-ingestion-service/internal/clients/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type ClientHandler struct{}

func NewClientHandler() *ClientHandler {

	return &ClientHandler{}
}

// CreateClient handles POST /clients
func (ch *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {

	var client model.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "client"),
		}, http.StatusBadRequest))
		return
	}

	clientService := provider.NewClientProvider().GetClientService()
	created, err := clientService.AddClient(client)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Info(fmt.Sprintf("Client: %s created successfully with id: %d", created.Name,
		created.Id))
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// GetClients handles GET /clients
func (ch *ClientHandler) GetClients(w http.ResponseWriter, r *http.Request) {

	clientService := provider.NewClientProvider().GetClientService()
	clients, err := clientService.GetClients()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, clients)
}

// GetClient handles GET /clients/:id
func (ch *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {

	clientId, err := utils.PathSuffixInt64(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	clientService := provider.NewClientProvider().GetClientService()
	client, err := clientService.GetClient(clientId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, client)
}

// UpdateClient handles PUT /clients/:id
func (ch *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {

	clientId, err := utils.PathSuffixInt64(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var client model.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "client"),
		}, http.StatusBadRequest))
		return
	}

	clientService := provider.NewClientProvider().GetClientService()
	updated, err := clientService.UpdateClient(clientId, client)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Info(fmt.Sprintf("Client: %d updated successfully.", clientId))
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteClient handles DELETE /clients/:id
func (ch *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {

	clientId, err := utils.PathSuffixInt64(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	clientService := provider.NewClientProvider().GetClientService()
	if err := clientService.DeleteClient(clientId); err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Info(fmt.Sprintf("Client: %d deleted successfully.", clientId))
	w.WriteHeader(http.StatusNoContent)
}
