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

	"github.com/wso2/xml-ingestion-service/internal/mapping/model"
	"github.com/wso2/xml-ingestion-service/internal/mapping/provider"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type MappingHandler struct{}

func NewMappingHandler() *MappingHandler {

	return &MappingHandler{}
}

// GetMappingRules handles GET /mapping-rules?interfaceId=N
func (mh *MappingHandler) GetMappingRules(w http.ResponseWriter, r *http.Request) {

	interfaceId, err := utils.ParseInt64Query(r, constants.ParamInterfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	mappingService := provider.NewMappingProvider().GetMappingService()
	rules, err := mappingService.GetMappingRules(interfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, rules)
}

// CreateMappingRule handles POST /mapping-rules
func (mh *MappingHandler) CreateMappingRule(w http.ResponseWriter, r *http.Request) {

	var rule model.MappingRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "mapping rule"),
		}, http.StatusBadRequest))
		return
	}

	mappingService := provider.NewMappingProvider().GetMappingService()
	created, err := mappingService.CreateMappingRule(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// UpdateMappingRule handles PUT /mapping-rules/:id
func (mh *MappingHandler) UpdateMappingRule(w http.ResponseWriter, r *http.Request) {

	ruleId, err := utils.PathSuffixInt64(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var rule model.MappingRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "mapping rule"),
		}, http.StatusBadRequest))
		return
	}

	mappingService := provider.NewMappingProvider().GetMappingService()
	updated, err := mappingService.UpdateMappingRule(ruleId, rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteMappingRule handles DELETE /mapping-rules/:id
func (mh *MappingHandler) DeleteMappingRule(w http.ResponseWriter, r *http.Request) {

	ruleId, err := utils.PathSuffixInt64(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	mappingService := provider.NewMappingProvider().GetMappingService()
	if err := mappingService.DeleteMappingRule(ruleId); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReplaceMappingRules handles PUT /mapping-configuration?interfaceId=N
func (mh *MappingHandler) ReplaceMappingRules(w http.ResponseWriter, r *http.Request) {

	interfaceId, err := utils.ParseInt64Query(r, constants.ParamInterfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "mapping configuration"),
		}, http.StatusBadRequest))
		return
	}

	mappingService := provider.NewMappingProvider().GetMappingService()
	replaced, err := mappingService.ReplaceMappingRules(interfaceId, request.Rules)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Info(fmt.Sprintf("Mapping configuration of interface: %d replaced with %d rule(s).",
		interfaceId, len(replaced)))
	utils.WriteJSONResponse(w, http.StatusOK, replaced)
}

// GetMappingSurface handles GET /mapping-configuration?interfaceId=N
func (mh *MappingHandler) GetMappingSurface(w http.ResponseWriter, r *http.Request) {

	interfaceId, err := utils.ParseInt64Query(r, constants.ParamInterfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	mappingService := provider.NewMappingProvider().GetMappingService()
	surface, err := mappingService.GetMappingSurface(interfaceId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, surface)
}

// BindMapping handles POST /mapping-configuration/bind
func (mh *MappingHandler) BindMapping(w http.ResponseWriter, r *http.Request) {

	var rule model.MappingRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "mapping binding"),
		}, http.StatusBadRequest))
		return
	}

	mappingService := provider.NewMappingProvider().GetMappingService()
	bound, err := mappingService.BindMapping(rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, bound)
}
