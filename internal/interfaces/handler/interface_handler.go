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

	"github.com/wso2/xml-ingestion-service/internal/interfaces/model"
	"github.com/wso2/xml-ingestion-service/internal/interfaces/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type InterfaceHandler struct{}

func NewInterfaceHandler() *InterfaceHandler {

	return &InterfaceHandler{}
}

// CreateInterface handles POST /interfaces
func (ih *InterfaceHandler) CreateInterface(w http.ResponseWriter, r *http.Request) {

	var iface model.Interface
	if err := json.NewDecoder(r.Body).Decode(&iface); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "interface"),
		}, http.StatusBadRequest))
		return
	}

	interfaceService := provider.NewInterfaceProvider().GetInterfaceService()
	created, err := interfaceService.AddInterface(iface)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Info(fmt.Sprintf("Interface: %s created successfully with id: %d", created.Name,
		created.Id))
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// GetInterfaces handles GET /interfaces and GET /interfaces?clientId=N
func (ih *InterfaceHandler) GetInterfaces(w http.ResponseWriter, r *http.Request) {

	interfaceService := provider.NewInterfaceProvider().GetInterfaceService()

	if r.URL.Query().Get(constants.ParamClientId) != "" {
		clientId, err := utils.ParseInt64Query(r, constants.ParamClientId)
		if err != nil {
			utils.HandleError(w, err)
			return
		}
		interfaces, err := interfaceService.GetInterfacesByClient(clientId)
		if err != nil {
			utils.HandleError(w, err)
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, interfaces)
		return
	}

	interfaces, err := interfaceService.GetInterfaces()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, interfaces)
}

// GetInterface handles GET /interfaces/:id
func (ih *InterfaceHandler) GetInterface(w http.ResponseWriter, r *http.Request) {

	interfaceId, err := utils.PathSuffixInt64(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	interfaceService := provider.NewInterfaceProvider().GetInterfaceService()
	iface, err := interfaceService.GetInterface(interfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, iface)
}

// UpdateInterface handles PUT /interfaces/:id
func (ih *InterfaceHandler) UpdateInterface(w http.ResponseWriter, r *http.Request) {

	interfaceId, err := utils.PathSuffixInt64(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var iface model.Interface
	if err := json.NewDecoder(r.Body).Decode(&iface); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "interface"),
		}, http.StatusBadRequest))
		return
	}

	interfaceService := provider.NewInterfaceProvider().GetInterfaceService()
	updated, err := interfaceService.UpdateInterface(interfaceId, iface)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Info(fmt.Sprintf("Interface: %d updated successfully.", interfaceId))
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteInterface handles DELETE /interfaces/:id
func (ih *InterfaceHandler) DeleteInterface(w http.ResponseWriter, r *http.Request) {

	interfaceId, err := utils.PathSuffixInt64(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	interfaceService := provider.NewInterfaceProvider().GetInterfaceService()
	if err := interfaceService.DeleteInterface(interfaceId); err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Info(fmt.Sprintf("Interface: %d deleted successfully.", interfaceId))
	w.WriteHeader(http.StatusNoContent)
}
