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
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	filemodel "github.com/wso2/xml-ingestion-service/internal/files/model"
	fileservice "github.com/wso2/xml-ingestion-service/internal/files/service"
	interfaceservice "github.com/wso2/xml-ingestion-service/internal/interfaces/service"
	mappingmodel "github.com/wso2/xml-ingestion-service/internal/mapping/model"
	mappingservice "github.com/wso2/xml-ingestion-service/internal/mapping/service"
	"github.com/wso2/xml-ingestion-service/internal/pipeline/model"
	"github.com/wso2/xml-ingestion-service/internal/pipeline/service"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
)

// waitForTerminalStatus polls the registry until the file leaves PROCESSING.
func waitForTerminalStatus(t *testing.T, fileId string) *filemodel.ProcessedFile {

	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		file, err := fileservice.GetFileService().GetProcessedFile(fileId)
		require.NoError(t, err)
		if file.Status != constants.FileStatusProcessing {
			return file
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("file %s never left PROCESSING", fileId)
	return nil
}

func bindOrderRules(t *testing.T, interfaceId int64) {

	t.Helper()
	_, err := mappingservice.GetMappingService().ReplaceMappingRules(interfaceId, []mappingmodel.MappingRule{
		{XmlPath: "Orders/Order/OrderNumber", TableName: "orders", DatabaseField: "order_number"},
		{XmlPath: "Orders/Order/CustomerName", TableName: "orders", DatabaseField: "customer_name"},
		{XmlPath: "Orders/Order/Amount", TableName: "orders", DatabaseField: "amount"},
		{XmlPath: "Orders/Order/@currency", TableName: "orders", DatabaseField: "currency_code"},
	})
	require.NoError(t, err)
}

func TestPipelineProcessesUploadEndToEnd(t *testing.T) {

	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")
	bindOrderRules(t, iface.Id)

	payload := []byte(`<Orders>
		<Order currency="EUR">
			<OrderNumber>E2E-1</OrderNumber>
			<CustomerName>Acme GmbH</CustomerName>
			<Amount>10.50</Amount>
		</Order>
		<Order currency="USD">
			<OrderNumber>E2E-2</OrderNumber>
			<Amount>7.25</Amount>
		</Order>
	</Orders>`)

	record, err := service.GetPipelineService().SubmitFile(model.Submission{
		Filename:    "orders.xml",
		ClientId:    client.Id,
		InterfaceId: iface.Id,
		Payload:     payload,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.FileStatusProcessing, record.Status)

	final := waitForTerminalStatus(t, record.FileId)
	assert.Equal(t, constants.FileStatusCompleted, final.Status)
	assert.Equal(t, int64(2), final.RecordsProcessed)

	var count int
	err = TestDB.QueryRow(
		"SELECT COUNT(*) FROM orders WHERE order_number IN ('E2E-1', 'E2E-2')").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var currency string
	err = TestDB.QueryRow(
		"SELECT currency_code FROM orders WHERE order_number = 'E2E-2'").Scan(&currency)
	require.NoError(t, err)
	assert.Equal(t, "USD", currency)
}

func TestPipelineFailsFileWithoutMappingRules(t *testing.T) {

	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	record, err := service.GetPipelineService().SubmitFile(model.Submission{
		Filename:    "orders.xml",
		ClientId:    client.Id,
		InterfaceId: iface.Id,
		Payload:     []byte("<Orders><Order><OrderNumber>X-1</OrderNumber></Order></Orders>"),
	})
	require.NoError(t, err)

	final := waitForTerminalStatus(t, record.FileId)
	assert.Equal(t, constants.FileStatusFailed, final.Status)
	assert.NotEmpty(t, final.ErrorMessage)
}

func TestPipelineFailsFileOnMalformedXML(t *testing.T) {

	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")
	bindOrderRules(t, iface.Id)

	record, err := service.GetPipelineService().SubmitFile(model.Submission{
		Filename:    "broken.xml",
		ClientId:    client.Id,
		InterfaceId: iface.Id,
		Payload:     []byte("<Orders><Order><OrderNumber>X-1"),
	})
	require.NoError(t, err)

	final := waitForTerminalStatus(t, record.FileId)
	assert.Equal(t, constants.FileStatusFailed, final.Status)
}

func TestSubmitFileRejectsScopeMismatch(t *testing.T) {

	client := createTestClient(t)
	other := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	_, err := service.GetPipelineService().SubmitFile(model.Submission{
		Filename:    "orders.xml",
		ClientId:    other.Id,
		InterfaceId: iface.Id,
		Payload:     []byte("<Orders/>"),
	})
	requireClientError(t, err, errors.VALIDATION_ERROR.Code, http.StatusBadRequest)
}

func TestSubmitFileRejectsInactiveInterface(t *testing.T) {

	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	iface.Status = constants.InterfaceStatusInactive
	_, err := interfaceservice.GetInterfaceService().UpdateInterface(iface.Id, *iface)
	require.NoError(t, err)

	_, err = service.GetPipelineService().SubmitFile(model.Submission{
		Filename:    "orders.xml",
		ClientId:    client.Id,
		InterfaceId: iface.Id,
		Payload:     []byte("<Orders/>"),
	})
	requireClientError(t, err, errors.INTERFACE_INACTIVE.Code, http.StatusConflict)
}

func TestSubmitFileRejectsEmptyPayload(t *testing.T) {

	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	_, err := service.GetPipelineService().SubmitFile(model.Submission{
		Filename:    "orders.xml",
		ClientId:    client.Id,
		InterfaceId: iface.Id,
	})
	requireClientError(t, err, errors.VALIDATION_ERROR.Code, http.StatusBadRequest)
}

func TestSubmitFileRejectsOversizedPayload(t *testing.T) {

	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	oversized := make([]byte, constants.DefaultMaxFileSize+1)
	_, err := service.GetPipelineService().SubmitFile(model.Submission{
		Filename:    fmt.Sprintf("huge-%d.xml", iface.Id),
		ClientId:    client.Id,
		InterfaceId: iface.Id,
		Payload:     oversized,
	})
	requireClientError(t, err, errors.VALIDATION_ERROR.Code, http.StatusBadRequest)
}
