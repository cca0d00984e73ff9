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

	"github.com/wso2/xml-ingestion-service/internal/clients/handler"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
)

type ClientService struct {
	clientHandler *handler.ClientHandler
}

func NewClientService(mux *http.ServeMux, apiBasePath string) *ClientService {

	instance := &ClientService{
		clientHandler: handler.NewClientHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *ClientService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s/clients", apiBasePath),
		secure(constants.OpWriteClients, s.clientHandler.CreateClient))
	mux.HandleFunc(fmt.Sprintf("GET %s/clients", apiBasePath),
		secure(constants.OpReadConfiguration, s.clientHandler.GetClients))
	mux.HandleFunc(fmt.Sprintf("GET %s/clients/", apiBasePath),
		secure(constants.OpReadConfiguration, s.clientHandler.GetClient))
	mux.HandleFunc(fmt.Sprintf("PUT %s/clients/", apiBasePath),
		secure(constants.OpWriteClients, s.clientHandler.UpdateClient))
	mux.HandleFunc(fmt.Sprintf("DELETE %s/clients/", apiBasePath),
		secure(constants.OpWriteClients, s.clientHandler.DeleteClient))
}
