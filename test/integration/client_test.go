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

package integration

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/xml-ingestion-service/internal/clients/model"
	"github.com/wso2/xml-ingestion-service/internal/clients/service"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

func TestClientLifecycle(t *testing.T) {

	svc := service.GetClientService()

	created, err := svc.AddClient(model.Client{
		Name:        "client-" + uuid.NewString(),
		Code:        "ACME",
		Description: "Acme ingestion tenant",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.Equal(t, constants.ClientStatusPending, created.Status)
	assert.NotZero(t, created.CreatedAt)

	fetched, err := svc.GetClient(created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, "ACME", fetched.Code)

	fetched.Status = constants.ClientStatusActive
	updated, err := svc.UpdateClient(created.Id, *fetched)
	require.NoError(t, err)
	assert.Equal(t, constants.ClientStatusActive, updated.Status)

	require.NoError(t, svc.DeleteClient(created.Id))

	_, err = svc.GetClient(created.Id)
	requireClientError(t, err, errors.CLIENT_NOT_FOUND.Code, http.StatusNotFound)
}

func TestDuplicateClientNameRejected(t *testing.T) {

	svc := service.GetClientService()
	name := "client-" + uuid.NewString()

	_, err := svc.AddClient(model.Client{Name: name})
	require.NoError(t, err)

	_, err = svc.AddClient(model.Client{Name: name})
	requireClientError(t, err, errors.DUPLICATE_CLIENT_NAME.Code, http.StatusConflict)
}

func TestDeleteClientWithInterfacesRejected(t *testing.T) {

	client := createTestClient(t)
	createTestInterface(t, client.Id, "")

	err := service.GetClientService().DeleteClient(client.Id)
	requireClientError(t, err, errors.CLIENT_HAS_INTERFACES.Code, http.StatusConflict)

	// The client must survive the rejected delete.
	survivor, err := service.GetClientService().GetClient(client.Id)
	require.NoError(t, err)
	assert.Equal(t, client.Name, survivor.Name)
}
