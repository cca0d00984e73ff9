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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clientmodel "github.com/wso2/xml-ingestion-service/internal/clients/model"
	clientservice "github.com/wso2/xml-ingestion-service/internal/clients/service"
	interfacemodel "github.com/wso2/xml-ingestion-service/internal/interfaces/model"
	interfaceservice "github.com/wso2/xml-ingestion-service/internal/interfaces/service"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

func createTestClient(t *testing.T) *clientmodel.Client {

	t.Helper()
	created, err := clientservice.GetClientService().AddClient(clientmodel.Client{
		Name:   "client-" + uuid.NewString(),
		Status: constants.ClientStatusActive,
	})
	require.NoError(t, err)
	require.NotZero(t, created.Id)
	return created
}

func createTestInterface(t *testing.T, clientId int64, schemaPath string) *interfacemodel.Interface {

	t.Helper()
	created, err := interfaceservice.GetInterfaceService().AddInterface(interfacemodel.Interface{
		ClientId:    clientId,
		Name:        "interface-" + uuid.NewString(),
		RootElement: "Orders",
		SchemaPath:  schemaPath,
	})
	require.NoError(t, err)
	require.NotZero(t, created.Id)
	return created
}

// requireClientError asserts that err is a caller failure carrying the given
// error code and HTTP status.
func requireClientError(t *testing.T, err error, code string, status int) {

	t.Helper()
	var clientErr *errors.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, code, clientErr.Code)
	assert.Equal(t, status, clientErr.StatusCode)
}
