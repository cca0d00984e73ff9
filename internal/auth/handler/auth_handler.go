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
	"strings"

	"github.com/wso2/xml-ingestion-service/internal/auth/model"
	"github.com/wso2/xml-ingestion-service/internal/system/authn"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
	"github.com/wso2/xml-ingestion-service/internal/system/utils"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {

	return &AuthHandler{}
}

// Login handles POST /auth/login
func (ah *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {

	var request model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "login request"),
		}, http.StatusBadRequest))
		return
	}

	principal := authn.Authenticate(strings.TrimSpace(request.Username), request.Password)
	if principal == nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Invalid username or password.",
		}, http.StatusUnauthorized))
		return
	}

	token, err := authn.IssueToken(*principal)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	log.GetLogger().Info(fmt.Sprintf("Operator: %s logged in.", principal.Username))
	utils.WriteJSONResponse(w, http.StatusOK, model.LoginResponse{
		Token:    token,
		Username: principal.Username,
		Roles:    principal.Roles,
	})
}

// Logout handles POST /auth/logout. Session tokens are stateless, so logout
// only confirms the token was valid; clients drop it locally.
func (ah *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {

	principal, err := currentPrincipal(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	log.GetLogger().Info(fmt.Sprintf("Operator: %s logged out.", principal.Username))
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser handles GET /auth/user
func (ah *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {

	principal, err := currentPrincipal(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, principal)
}

func currentPrincipal(r *http.Request) (*authn.Principal, error) {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}

	principal, err := authn.ValidateToken(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
	if err != nil {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Session token is invalid or expired",
		}, http.StatusUnauthorized)
	}
	return principal, nil
}
