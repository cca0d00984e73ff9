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
	"github.com/wso2/xml-ingestion-service/internal/files/model"
	"github.com/wso2/xml-ingestion-service/internal/files/service"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
	"github.com/wso2/xml-ingestion-service/internal/system/errors"
	"github.com/wso2/xml-ingestion-service/internal/system/pagination"
)

func recordTestFile(t *testing.T, clientId int64, interfaceId int64) *model.ProcessedFile {

	t.Helper()
	file, err := service.GetFileService().RecordSubmission(model.ProcessedFile{
		FileId:      uuid.NewString(),
		Filename:    "orders.xml",
		ClientId:    clientId,
		InterfaceId: interfaceId,
	})
	require.NoError(t, err)
	return file
}

func TestFileStatusTransitionsAreMonotonic(t *testing.T) {

	svc := service.GetFileService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	file := recordTestFile(t, client.Id, iface.Id)
	assert.Equal(t, constants.FileStatusProcessing, file.Status)

	require.NoError(t, svc.CompleteFile(file.FileId, 42))

	completed, err := svc.GetProcessedFile(file.FileId)
	require.NoError(t, err)
	assert.Equal(t, constants.FileStatusCompleted, completed.Status)
	assert.Equal(t, int64(42), completed.RecordsProcessed)
	assert.NotZero(t, completed.ProcessedDate)

	// A later failure must not rewrite the terminal state.
	require.NoError(t, svc.FailFile(file.FileId, "late failure"))

	final, err := svc.GetProcessedFile(file.FileId)
	require.NoError(t, err)
	assert.Equal(t, constants.FileStatusCompleted, final.Status)
	assert.Empty(t, final.ErrorMessage)
}

func TestFailedFileKeepsFailureReason(t *testing.T) {

	svc := service.GetFileService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	file := recordTestFile(t, client.Id, iface.Id)
	require.NoError(t, svc.FailFile(file.FileId, "schema mismatch at record 3"))

	failed, err := svc.GetProcessedFile(file.FileId)
	require.NoError(t, err)
	assert.Equal(t, constants.FileStatusFailed, failed.Status)
	assert.Equal(t, "schema mismatch at record 3", failed.ErrorMessage)
}

func TestQueryProcessedFilesFiltersByScope(t *testing.T) {

	svc := service.GetFileService()
	client := createTestClient(t)
	other := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")
	otherIface := createTestInterface(t, other.Id, "")

	recordTestFile(t, client.Id, iface.Id)
	recordTestFile(t, client.Id, iface.Id)
	recordTestFile(t, other.Id, otherIface.Id)

	page, err := svc.QueryProcessedFiles(model.FileQuery{
		ClientId: client.Id,
		Page:     pagination.Page{Size: 20},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	require.Len(t, page.Files, 2)
	for _, file := range page.Files {
		assert.Equal(t, client.Id, file.ClientId)
	}
}

func TestQueryProcessedFilesPaginates(t *testing.T) {

	svc := service.GetFileService()
	client := createTestClient(t)
	iface := createTestInterface(t, client.Id, "")

	for i := 0; i < 5; i++ {
		recordTestFile(t, client.Id, iface.Id)
	}

	first, err := svc.QueryProcessedFiles(model.FileQuery{
		ClientId: client.Id,
		Page:     pagination.Page{Number: 0, Size: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.TotalCount)
	assert.Len(t, first.Files, 2)

	last, err := svc.QueryProcessedFiles(model.FileQuery{
		ClientId: client.Id,
		Page:     pagination.Page{Number: 2, Size: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), last.TotalCount)
	assert.Len(t, last.Files, 1)
}

func TestQueryProcessedFilesRejectsBadFilters(t *testing.T) {

	svc := service.GetFileService()

	_, err := svc.QueryProcessedFiles(model.FileQuery{Status: "SHREDDED"})
	requireClientError(t, err, errors.VALIDATION_ERROR.Code, http.StatusBadRequest)

	_, err = svc.QueryProcessedFiles(model.FileQuery{StartDate: 200, EndDate: 100})
	requireClientError(t, err, errors.VALIDATION_ERROR.Code, http.StatusBadRequest)
}

func TestGetProcessedFileUnknownId(t *testing.T) {

	_, err := service.GetFileService().GetProcessedFile(uuid.NewString())
	requireClientError(t, err, errors.PROCESSED_FILE_NOT_FOUND.Code, http.StatusNotFound)
}
