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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/xml-ingestion-service/internal/clients/model"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

func TestValidateClientDefaultsStatusToPending(t *testing.T) {

	client := model.Client{Name: "  Acme Logistics  "}
	require.NoError(t, validateClient(&client))

	assert.Equal(t, "Acme Logistics", client.Name)
	assert.Equal(t, constants.ClientStatusPending, client.Status)
}

func TestValidateClientAcceptsKnownStatuses(t *testing.T) {

	for status := range constants.AllowedClientStatuses {
		client := model.Client{Name: "Acme", Status: status}
		assert.NoError(t, validateClient(&client), status)
	}
}

func TestValidateClientRejectsEmptyName(t *testing.T) {

	client := model.Client{Name: "   "}
	err := validateClient(&client)
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
	assert.Equal(t, errors.VALIDATION_ERROR.Code, clientErr.ErrorMessage.Code)
}

func TestValidateClientRejectsUnknownStatus(t *testing.T) {

	client := model.Client{Name: "Acme", Status: "DORMANT"}
	err := validateClient(&client)
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok)
	assert.Contains(t, clientErr.ErrorMessage.Description, "DORMANT")
}
